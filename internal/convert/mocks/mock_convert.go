package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockExtractor struct {
	mock.Mock
}

func (m *MockExtractor) ExtractHTML(ctx context.Context, path string) (string, error) {
	args := m.Called(ctx, path)
	return args.String(0), args.Error(1)
}

type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) RenderPDF(ctx context.Context, htmlContent string, outputPath string) error {
	args := m.Called(ctx, htmlContent, outputPath)
	return args.Error(0)
}

func (m *MockRenderer) Close() error {
	args := m.Called()
	return args.Error(0)
}
