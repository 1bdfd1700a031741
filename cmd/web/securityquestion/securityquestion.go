// Package securityquestion 은 contact form 의 "a + b 는?" 질문 helper 를 제공한다.
package securityquestion

import "math/rand"

// Helper 는 닫힌 구간 [min, max] 의 난수를 반환한다.
type Helper struct {
	min, max int
	intN     func(n int) int
}

// New 는 [min, max] 용 Helper 를 만든다. 순서가 뒤집혀 있으면 바꿔서 쓴다.
func New(min, max int) *Helper {
	if min > max {
		min, max = max, min
	}
	return &Helper{min: min, max: max, intN: rand.Intn}
}

// RandomNumber 는 [min, max] 의 수를 반환한다.
func (h *Helper) RandomNumber() int {
	return h.min + h.intN(h.max-h.min+1)
}
