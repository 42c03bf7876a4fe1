package service

import (
	"context"
	"testing"

	"github.com/nandraak/siakad/internal/apperrors"
	"github.com/nandraak/siakad/internal/dto"
	"github.com/nandraak/siakad/internal/repository"
	"github.com/nandraak/siakad/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTranscriptService() TranscriptService {
	return NewTranscriptService(repository.NewTranscriptRepository(store.NewMemoryStore()))
}

func TestTranscriptIPOverQualityPoints(t *testing.T) {
	svc := newTranscriptService()
	ctx := context.Background()

	err := svc.Put(ctx, "2301001", dto.TranscriptPutRequest{Rows: []dto.CourseGradeDTO{
		{Course: "Kalkulus", Code: "MK101", Letter: "A", Quality: 4},
		{Course: "Fisika", Code: "MK102", Letter: "B", Quality: 3},
		{Course: "Kimia", Code: "MK103", Letter: "C", Quality: 2},
	}})
	require.NoError(t, err)

	resp, err := svc.Get(ctx, "2301001")
	require.NoError(t, err)
	assert.InDelta(t, 3.0, resp.IP, 1e-9)
	assert.False(t, resp.Cumlaude)
	assert.Len(t, resp.Rows, 3)
}

func TestTranscriptCumlaudeAtThreshold(t *testing.T) {
	svc := newTranscriptService()
	ctx := context.Background()

	err := svc.Put(ctx, "2301001", dto.TranscriptPutRequest{Rows: []dto.CourseGradeDTO{
		{Course: "Kalkulus", Code: "MK101", Letter: "A", Quality: 4},
		{Course: "Fisika", Code: "MK102", Letter: "B", Quality: 3},
	}})
	require.NoError(t, err)

	resp, err := svc.Get(ctx, "2301001")
	require.NoError(t, err)
	assert.InDelta(t, 3.5, resp.IP, 1e-9)
	// The threshold is inclusive.
	assert.True(t, resp.Cumlaude)
}

func TestTranscriptEmptySheet(t *testing.T) {
	svc := newTranscriptService()

	resp, err := svc.Get(context.Background(), "2301001")
	require.NoError(t, err)
	assert.Empty(t, resp.Rows)
	assert.Zero(t, resp.IP)
	assert.False(t, resp.Cumlaude)
}

func TestTranscriptPutValidation(t *testing.T) {
	svc := newTranscriptService()
	ctx := context.Background()

	err := svc.Put(ctx, "", dto.TranscriptPutRequest{Rows: []dto.CourseGradeDTO{{Course: "x", Code: "y", Letter: "A"}}})
	assert.True(t, apperrors.IsValidation(err))

	err = svc.Put(ctx, "2301001", dto.TranscriptPutRequest{})
	assert.True(t, apperrors.IsValidation(err))
}
