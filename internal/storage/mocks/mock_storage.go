package mocks

import (
	"io"

	"github.com/stretchr/testify/mock"

	"convertapi/internal/model"
)

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) SaveUpload(r io.Reader, originalFilename string, contentType string, size int64) (*model.UploadedDocument, error) {
	args := m.Called(r, originalFilename, contentType, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UploadedDocument), args.Error(1)
}

func (m *MockStorage) OutputPath(storedFilename string) string {
	args := m.Called(storedFilename)
	return args.String(0)
}

func (m *MockStorage) Remove(path string) error {
	args := m.Called(path)
	return args.Error(0)
}
