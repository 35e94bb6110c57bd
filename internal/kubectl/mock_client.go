package kubectl

import (
	"context"
	"fmt"
)

// MockClient is a mock implementation of the Client interface for testing
type MockClient struct {
	NamespacesFunc   func(ctx context.Context) ([]string, error)
	APIResourcesFunc func(ctx context.Context) ([]string, error)
	ResourcesFunc    func(ctx context.Context, namespace, kind string) ([]string, error)
	ContextsFunc     func(ctx context.Context) ([]string, error)
	UseContextFunc   func(ctx context.Context, name string) error
}

// NewMockClient creates a new mock client
func NewMockClient() *MockClient {
	return &MockClient{}
}

func (m *MockClient) Namespaces(ctx context.Context) ([]string, error) {
	if m.NamespacesFunc != nil {
		return m.NamespacesFunc(ctx)
	}
	return nil, fmt.Errorf("NamespacesFunc not implemented")
}

func (m *MockClient) APIResources(ctx context.Context) ([]string, error) {
	if m.APIResourcesFunc != nil {
		return m.APIResourcesFunc(ctx)
	}
	return nil, fmt.Errorf("APIResourcesFunc not implemented")
}

func (m *MockClient) Resources(ctx context.Context, namespace, kind string) ([]string, error) {
	if m.ResourcesFunc != nil {
		return m.ResourcesFunc(ctx, namespace, kind)
	}
	return nil, fmt.Errorf("ResourcesFunc not implemented")
}

func (m *MockClient) Contexts(ctx context.Context) ([]string, error) {
	if m.ContextsFunc != nil {
		return m.ContextsFunc(ctx)
	}
	return nil, fmt.Errorf("ContextsFunc not implemented")
}

func (m *MockClient) UseContext(ctx context.Context, name string) error {
	if m.UseContextFunc != nil {
		return m.UseContextFunc(ctx, name)
	}
	return fmt.Errorf("UseContextFunc not implemented")
}
