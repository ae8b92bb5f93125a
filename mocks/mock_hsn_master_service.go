package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"taxengine/internal/gst"
)

// MockHSNMasterService is a mock implementation of service.HSNMasterService.
type MockHSNMasterService struct {
	mock.Mock
}

func (m *MockHSNMasterService) Lookup(ctx context.Context) (*gst.HSNLookup, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gst.HSNLookup), args.Error(1)
}

func (m *MockHSNMasterService) Refresh(ctx context.Context) (*gst.HSNLookup, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gst.HSNLookup), args.Error(1)
}

func (m *MockHSNMasterService) Enabled() bool {
	args := m.Called()
	return args.Bool(0)
}
