package book

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libcatalog/internal/isbn"
	"libcatalog/internal/metadata"
	"libcatalog/internal/qr"
)

const testISBN = "9780143127741"

func TestService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := NewMockRepository(ctrl)
	agg := NewMockAggregator(ctrl)
	codes := NewMockCodeGenerator(ctrl)
	service := NewService(repo, agg, codes)

	rec := metadata.Record{
		ISBN:     testISBN,
		Title:    "The Body Keeps the Score",
		Authors:  []string{"Bessel van der Kolk"},
		CoverURL: "https://covers.openlibrary.org/b/isbn/9780143127741-L.jpg",
		Price:    12.99,
		InStock:  true,
	}

	t.Run("success", func(t *testing.T) {
		agg.EXPECT().Aggregate(gomock.Any(), testISBN).Return(rec, nil)
		codes.EXPECT().Generate(testISBN).Return("qr_code_9780143127741.png", nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b *Book) error {
				assert.Equal(t, StatusAvailable, b.Status)
				assert.Equal(t, "qr_code_9780143127741.png", b.QRCode)
				assert.Equal(t, rec.Title, b.Title)
				assert.Equal(t, rec.Price, b.Price)
				assert.True(t, b.InStock)
				return nil
			})

		b, err := service.Register(context.Background(), testISBN)

		require.NoError(t, err)
		assert.Equal(t, testISBN, b.ISBN)
		assert.Equal(t, []string{"Bessel van der Kolk"}, b.Authors)
	})

	t.Run("invalid isbn surfaces before anything else", func(t *testing.T) {
		agg.EXPECT().Aggregate(gomock.Any(), "bogus").Return(metadata.Record{}, isbn.ErrInvalid)

		_, err := service.Register(context.Background(), "bogus")

		assert.ErrorIs(t, err, isbn.ErrInvalid)
	})

	t.Run("code generation failure aborts registration", func(t *testing.T) {
		agg.EXPECT().Aggregate(gomock.Any(), testISBN).Return(rec, nil)
		codes.EXPECT().Generate(testISBN).Return("", errors.New("disk full"))
		// Repository must not be touched.

		_, err := service.Register(context.Background(), testISBN)

		assert.Error(t, err)
	})

	t.Run("duplicate isbn", func(t *testing.T) {
		agg.EXPECT().Aggregate(gomock.Any(), testISBN).Return(rec, nil)
		codes.EXPECT().Generate(testISBN).Return("qr_code_9780143127741.png", nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(ErrAlreadyExists)

		_, err := service.Register(context.Background(), testISBN)

		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("store failure propagates", func(t *testing.T) {
		agg.EXPECT().Aggregate(gomock.Any(), testISBN).Return(rec, nil)
		codes.EXPECT().Generate(testISBN).Return("qr_code_9780143127741.png", nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))

		_, err := service.Register(context.Background(), testISBN)

		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrAlreadyExists)
	})
}

type orderedProvider struct {
	name    string
	partial *metadata.PartialRecord
}

func (p *orderedProvider) Name() string { return p.name }

func (p *orderedProvider) Lookup(_ context.Context, _ string) metadata.Result {
	return metadata.Result{Source: p.name, Partial: p.partial}
}

// Registration through the real aggregation service and code generator:
// the later provider wins shared fields, earlier unshared fields survive,
// and the persisted record starts out available.
func TestService_Register_EndToEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := NewMockRepository(ctrl)

	titleX, titleZ := "X", "Z"
	a := &orderedProvider{name: "A", partial: &metadata.PartialRecord{Title: &titleX, Authors: []string{"Y"}}}
	b := &orderedProvider{name: "B", partial: &metadata.PartialRecord{Title: &titleZ}}
	agg := metadata.NewService([]metadata.Provider{a, b}, nil, nil)
	codes := qr.NewGenerator(t.TempDir())
	service := NewService(repo, agg, codes)

	var persisted Book
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, bk *Book) error {
			persisted = *bk
			return nil
		})

	_, err := service.Register(context.Background(), "9780143127741")
	require.NoError(t, err)

	assert.Equal(t, "Z", persisted.Title)
	assert.Equal(t, []string{"Y"}, persisted.Authors)
	assert.Equal(t, StatusAvailable, persisted.Status)
	assert.Equal(t, "qr_code_9780143127741.png", persisted.QRCode)
	assert.Equal(t, metadata.FallbackCoverURL("9780143127741"), persisted.CoverURL)
}
