package impl

import (
	"context"
	"testing"

	"megaskyshop/internal/domain/entity"
	domainerrors "megaskyshop/internal/domain/errors"
	"megaskyshop/internal/domain/repository"
	"megaskyshop/internal/infra/csvimport"
	"megaskyshop/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func uintPtr(v uint) *uint { return &v }

func TestCategoryImportService_CreatesWithUniqueSlug(t *testing.T) {
	fx := createTestImportFixtures(t)
	srv := NewCategoryImportService(fx.params)

	fx.serveCSV("categories.csv", "name,description,sortOrder\nCafé & Bar,Drinks,3\n")
	fx.runTransactions()
	fx.factory.EXPECT().NewCategoryRepository().Return(fx.categoryRepo)
	fx.categoryRepo.EXPECT().
		FindChild(mock.Anything, (*uint)(nil), "Café & Bar").
		Return(nil, repository.ErrCategoryNotFound)
	fx.categoryRepo.EXPECT().SlugExists(mock.Anything, "cafe-bar").Return(true, nil)
	fx.categoryRepo.EXPECT().SlugExists(mock.Anything, "cafe-bar-2").Return(true, nil)
	fx.categoryRepo.EXPECT().SlugExists(mock.Anything, "cafe-bar-3").Return(false, nil)

	var created *entity.Category
	fx.categoryRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Category")).
		Run(func(_ context.Context, category *entity.Category) { created = category }).
		Return(nil)
	fx.publisher.EXPECT().PublishImportCompleted(mock.Anything, mock.Anything).Return(nil)

	summary, err := srv.Import(context.Background(), usecase.ImportOptions{Location: "categories.csv"})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Imported)

	require.NotNil(t, created)
	assert.Equal(t, "cafe-bar-3", created.Slug)
	assert.Equal(t, "Drinks", created.Description)
	assert.Equal(t, 3, created.SortOrder)
	assert.True(t, created.IsActive)
	assert.Nil(t, created.ParentID)
}

func TestCategoryImportService_ChildUnderTopLevelParent(t *testing.T) {
	fx := createTestImportFixtures(t)
	srv := NewCategoryImportService(fx.params)

	fx.serveCSV("categories.csv", "name,slug,parent\nPhones,,electronics\n")
	fx.runTransactions()
	fx.factory.EXPECT().NewCategoryRepository().Return(fx.categoryRepo)
	fx.categoryRepo.EXPECT().
		FindByNameOrSlug(mock.Anything, "electronics").
		Return(&entity.Category{ID: 4, Name: "Electronics", Slug: "electronics"}, nil)
	fx.categoryRepo.EXPECT().
		FindChild(mock.Anything, uintPtr(4), "Phones").
		Return(nil, repository.ErrCategoryNotFound)
	fx.categoryRepo.EXPECT().SlugExists(mock.Anything, "phones").Return(false, nil)

	var created *entity.Category
	fx.categoryRepo.EXPECT().
		Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, category *entity.Category) { created = category }).
		Return(nil)
	fx.publisher.EXPECT().PublishImportCompleted(mock.Anything, mock.Anything).Return(nil)

	summary, err := srv.Import(context.Background(), usecase.ImportOptions{Location: "categories.csv"})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Imported)

	require.NotNil(t, created)
	require.NotNil(t, created.ParentID)
	assert.Equal(t, uint(4), *created.ParentID)
	assert.Equal(t, "phones", created.Slug)
}

func TestCategoryImportService_ExistingCategoryIsSkipped(t *testing.T) {
	fx := createTestImportFixtures(t)
	srv := NewCategoryImportService(fx.params)

	fx.serveCSV("categories.csv", "name\nElectronics\n")
	fx.runTransactions()
	fx.factory.EXPECT().NewCategoryRepository().Return(fx.categoryRepo)
	fx.categoryRepo.EXPECT().
		FindChild(mock.Anything, (*uint)(nil), "Electronics").
		Return(&entity.Category{ID: 4, Name: "Electronics"}, nil)
	fx.publisher.EXPECT().PublishImportCompleted(mock.Anything, mock.Anything).Return(nil)

	summary, err := srv.Import(context.Background(), usecase.ImportOptions{Location: "categories.csv"})
	require.NoError(t, err)
	assert.Zero(t, summary.Imported)
	assert.Equal(t, 1, summary.Skipped)
}

func TestCategoryImportService_ParentErrors(t *testing.T) {
	tests := []struct {
		name       string
		parent     *entity.Category
		findErr    error
		wantReason string
	}{
		{
			name:       "parent not found",
			findErr:    repository.ErrCategoryNotFound,
			wantReason: "parent category not found: Phones",
		},
		{
			name:       "parent is a child",
			parent:     &entity.Category{ID: 9, Name: "Phones", ParentID: uintPtr(4)},
			wantReason: "parent category is itself a child category: Phones",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestImportFixtures(t)
			srv := NewCategoryImportService(fx.params)

			fx.serveCSV("categories.csv", "name,parent\nAndroid,Phones\n")
			fx.runTransactions()
			fx.factory.EXPECT().NewCategoryRepository().Return(fx.categoryRepo)
			fx.categoryRepo.EXPECT().FindByNameOrSlug(mock.Anything, "Phones").Return(tt.parent, tt.findErr)
			fx.publisher.EXPECT().PublishImportCompleted(mock.Anything, mock.Anything).Return(nil)

			summary, err := srv.Import(context.Background(), usecase.ImportOptions{Location: "categories.csv"})
			require.NoError(t, err)

			assert.Equal(t, 1, summary.Failed)
			require.Len(t, summary.Failures, 1)
			assert.Equal(t, 2, summary.Failures[0].Line)
			assert.Contains(t, summary.Failures[0].Reason, "field parent")
			assert.Contains(t, summary.Failures[0].Reason, tt.wantReason)
		})
	}
}

func TestCategoryImportService_ResolveParent(t *testing.T) {
	fx := createTestImportFixtures(t)
	srv := &categoryImportService{runner: newImportRunner(fx.params)}
	ctx := context.Background()

	parentID, err := srv.resolveParent(ctx, fx.categoryRepo, &csvimport.CategoryRow{Line: 6, Name: "Books"})
	require.NoError(t, err)
	assert.Nil(t, parentID)

	fx.categoryRepo.EXPECT().
		FindByNameOrSlug(mock.Anything, "Phones").
		Return(&entity.Category{ID: 9, ParentID: uintPtr(4)}, nil)

	_, err = srv.resolveParent(ctx, fx.categoryRepo, &csvimport.CategoryRow{Line: 7, Name: "Android", Parent: "Phones"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryTooDeep)
	assert.Equal(t, "ROW_INVALID", domainerrors.Code(err))
	assert.False(t, domainerrors.IsFatal(err))
}
