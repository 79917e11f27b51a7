package mocks

import (
	"github.com/texstream/texevents/internal/domain/event"
	"github.com/stretchr/testify/mock"
)

// MockEventWriter is a mock type for the app.EventWriter interface.
type MockEventWriter struct {
	mock.Mock
}

// WriteEvent provides a mock function with given fields: ev
func (_m *MockEventWriter) WriteEvent(ev event.Event) error {
	ret := _m.Called(ev)

	var r0 error
	if rf, ok := ret.Get(0).(func(event.Event) error); ok {
		r0 = rf(ev)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Close provides a mock function with given fields:
func (_m *MockEventWriter) Close() error {
	ret := _m.Called()

	var r0 error
	if rf, ok := ret.Get(0).(func() error); ok {
		r0 = rf()
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewMockEventWriter creates a new instance of MockEventWriter. It also
// registers a testing interface on the mock and a cleanup function to
// assert the mock's expectations.
func NewMockEventWriter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEventWriter {
	mock := &MockEventWriter{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
