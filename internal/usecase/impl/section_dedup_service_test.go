package impl

import (
	"context"
	"testing"

	"megaskyshop/internal/domain/entity"
	"megaskyshop/internal/domain/service"
	"megaskyshop/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storedSections() []*entity.HomepageSection {
	return []*entity.HomepageSection{
		{ID: 1, SectionName: "hero"},
		{ID: 2, SectionName: "benefits"},
		{ID: 5, SectionName: " Hero "},
		{ID: 7, SectionName: "benefits"},
		{ID: 9, SectionName: "footer"},
	}
}

func TestSectionDedupService_DryRunReportsOnly(t *testing.T) {
	fx := createTestImportFixtures(t)
	srv := NewSectionDedupService(fx.params)

	fx.sectionRepo.EXPECT().List(mock.Anything).Return(storedSections(), nil)

	var event *service.ImportCompletedEvent
	fx.publisher.EXPECT().
		PublishImportCompleted(mock.Anything, mock.Anything).
		Run(func(_ context.Context, e *service.ImportCompletedEvent) { event = e }).
		Return(nil)

	report, err := srv.Collapse(context.Background(), true)
	require.NoError(t, err)

	assert.True(t, report.DryRun)
	assert.Equal(t, 2, report.Groups)
	assert.Equal(t, []uint{5, 7}, report.Deleted)
	assert.Equal(t, map[string]uint{"hero": 1, "benefits": 2}, report.Kept)

	require.NotNil(t, event)
	assert.True(t, event.DryRun)
	assert.Equal(t, 2, event.Deleted)
	assert.Equal(t, "sections-dedup", event.Dataset)
}

func TestSectionDedupService_DeletesDuplicates(t *testing.T) {
	fx := createTestImportFixtures(t)
	srv := NewSectionDedupService(fx.params)

	fx.sectionRepo.EXPECT().List(mock.Anything).Return(storedSections(), nil)
	fx.runTransactions()
	fx.factory.EXPECT().NewHomepageSectionRepository().Return(fx.sectionRepo)
	fx.sectionRepo.EXPECT().DeleteByIDs(mock.Anything, []uint{5, 7}).Return(int64(2), nil)
	fx.publisher.EXPECT().
		PublishImportCompleted(mock.Anything, mock.MatchedBy(func(e *service.ImportCompletedEvent) bool {
			return e.Deleted == 2 && !e.DryRun
		})).
		Return(nil)

	report, err := srv.Collapse(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, []uint{5, 7}, report.Deleted)
}

func TestSectionDedupService_NothingToCollapse(t *testing.T) {
	fx := createTestImportFixtures(t)
	srv := NewSectionDedupService(fx.params)

	fx.sectionRepo.EXPECT().
		List(mock.Anything).
		Return([]*entity.HomepageSection{{ID: 1, SectionName: "hero"}, {ID: 2, SectionName: "benefits"}}, nil)
	fx.publisher.EXPECT().PublishImportCompleted(mock.Anything, mock.Anything).Return(nil)

	report, err := srv.Collapse(context.Background(), false)
	require.NoError(t, err)
	assert.Zero(t, report.Groups)
	assert.Empty(t, report.Deleted)
}

func TestSectionDedupService_DeleteFailure(t *testing.T) {
	fx := createTestImportFixtures(t)
	srv := NewSectionDedupService(fx.params)

	fx.sectionRepo.EXPECT().List(mock.Anything).Return(storedSections(), nil)
	fx.runTransactions()
	fx.factory.EXPECT().NewHomepageSectionRepository().Return(fx.sectionRepo)
	fx.sectionRepo.EXPECT().DeleteByIDs(mock.Anything, mock.Anything).Return(int64(0), errors.New("deadlock detected"))

	report, err := srv.Collapse(context.Background(), false)
	require.Error(t, err)
	assert.Nil(t, report)
	assert.Contains(t, err.Error(), "failed to delete duplicate sections")
}
