package io

// Queue is an in-memory Port. Input values are consumed in order, and
// every output value is recorded.
type Queue struct {
	Input  []int
	Output []int
}

// RequestInteger removes and returns the first input value.
func (q *Queue) RequestInteger() (value int, err error) {
	if len(q.Input) == 0 {
		err = ErrQueueEmpty
		return
	}

	value = q.Input[0]
	q.Input = q.Input[1:]
	return
}

// EmitInteger records an output value.
func (q *Queue) EmitInteger(value int) error {
	q.Output = append(q.Output, value)
	return nil
}
