package backendclient

import "sort"

// MessageBag 은 backend 실패 메시지를 출처 키("RequestException", "StatusCode" 등)별로 모은다.
// 비어 있지 않은 bag 이 곧 요청 실패를 뜻한다.
type MessageBag map[string][]string

// Add 는 key 아래에 메시지를 추가한다.
func (m MessageBag) Add(key, message string) {
	m[key] = append(m[key], message)
}

// Any 는 메시지가 하나라도 있는지 반환한다.
func (m MessageBag) Any() bool {
	for _, msgs := range m {
		if len(msgs) > 0 {
			return true
		}
	}
	return false
}

// All 은 key 순, 같은 key 안에서는 추가 순으로 모든 메시지를 반환한다.
func (m MessageBag) All() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var out []string
	for _, k := range keys {
		out = append(out, m[k]...)
	}
	return out
}
