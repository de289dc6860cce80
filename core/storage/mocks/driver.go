package mocks

import (
	"context"
	"io"
	"iter"

	"blobgate/core/storage"

	"github.com/stretchr/testify/mock"
)

// Driver is a mock implementation of storage.Driver
type Driver struct {
	mock.Mock
}

func (m *Driver) Copy(ctx context.Context, src, dest string) (*storage.CopyResponse, error) {
	args := m.Called(ctx, src, dest)
	if r, ok := args.Get(0).(*storage.CopyResponse); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Driver) Move(ctx context.Context, src, dest string) (*storage.MoveResponse, error) {
	args := m.Called(ctx, src, dest)
	if r, ok := args.Get(0).(*storage.MoveResponse); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Driver) Delete(ctx context.Context, location string) (*storage.DeleteResponse, error) {
	args := m.Called(ctx, location)
	if r, ok := args.Get(0).(*storage.DeleteResponse); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Driver) Exists(ctx context.Context, location string) (*storage.ExistsResponse, error) {
	args := m.Called(ctx, location)
	if r, ok := args.Get(0).(*storage.ExistsResponse); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Driver) Get(ctx context.Context, location, encoding string) (*storage.TextResponse, error) {
	args := m.Called(ctx, location, encoding)
	if r, ok := args.Get(0).(*storage.TextResponse); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Driver) GetBuffer(ctx context.Context, location string) (*storage.ContentResponse, error) {
	args := m.Called(ctx, location)
	if r, ok := args.Get(0).(*storage.ContentResponse); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Driver) GetStat(ctx context.Context, location string) (*storage.StatResponse, error) {
	args := m.Called(ctx, location)
	if r, ok := args.Get(0).(*storage.StatResponse); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Driver) GetStream(ctx context.Context, location string) (io.ReadCloser, error) {
	args := m.Called(ctx, location)
	if r, ok := args.Get(0).(io.ReadCloser); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Driver) Put(ctx context.Context, location string, content io.Reader) (*storage.PutResponse, error) {
	args := m.Called(ctx, location, content)
	if r, ok := args.Get(0).(*storage.PutResponse); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Driver) GetSignedURL(ctx context.Context, location string, opts storage.SignedURLOptions) (*storage.SignedURLResponse, error) {
	args := m.Called(ctx, location, opts)
	if r, ok := args.Get(0).(*storage.SignedURLResponse); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Driver) FlatList(ctx context.Context, prefix string) iter.Seq2[storage.FileListEntry, error] {
	args := m.Called(ctx, prefix)
	if seq, ok := args.Get(0).(iter.Seq2[storage.FileListEntry, error]); ok {
		return seq
	}
	return func(yield func(storage.FileListEntry, error) bool) {}
}
