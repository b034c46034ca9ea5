package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"convertapi/internal/model"
)

type MockConvertService struct {
	mock.Mock
}

func (m *MockConvertService) Convert(ctx context.Context, r io.Reader, originalFilename string, contentType string, size int64) (*model.UploadedDocument, *model.GeneratedOutput, error) {
	args := m.Called(ctx, r, originalFilename, contentType, size)
	var doc *model.UploadedDocument
	if args.Get(0) != nil {
		doc = args.Get(0).(*model.UploadedDocument)
	}
	var out *model.GeneratedOutput
	if args.Get(1) != nil {
		out = args.Get(1).(*model.GeneratedOutput)
	}
	return doc, out, args.Error(2)
}
