package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockClientInterfaceForTest creates a new mock disbursement client for testing
func NewMockClientInterfaceForTest(t *testing.T) *MockClientInterface {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockClientInterface(ctrl)
}
