package depot

type factory struct{}

var Factory factory

func (f factory) NewWorld() *World {
	return newWorld()
}

func (f factory) NewAccess() *Access {
	return &Access{}
}

func (f factory) NewSchedule(capacity int) *Schedule {
	return newSchedule(capacity)
}
