package impl

import (
	"context"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"megaskyshop/internal/domain/entity"
	domainerrors "megaskyshop/internal/domain/errors"
	"megaskyshop/internal/domain/repository"
	"megaskyshop/internal/domain/service"
	"megaskyshop/internal/errors"
	"megaskyshop/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestImportRunner_SourceMissingIsFatal(t *testing.T) {
	fx := createTestImportFixtures(t)
	srv := NewSectionImportService(fx.params)

	fx.opener.EXPECT().
		Open(mock.Anything, "missing.csv").
		Return(nil, domainerrors.NewSourceMissingError("missing.csv", nil))

	summary, err := srv.Import(context.Background(), usecase.ImportOptions{Location: "missing.csv"})
	require.Error(t, err)
	assert.Nil(t, summary)
	assert.True(t, domainerrors.IsFatal(err))

	_, ok := errors.AsType[*domainerrors.SourceMissingError](err)
	assert.True(t, ok)
}

func TestImportRunner_SchemaErrorIsFatal(t *testing.T) {
	fx := createTestImportFixtures(t)
	srv := NewSectionImportService(fx.params)

	fx.serveCSV("sections.csv", "title,content\nHello,World\n")

	summary, err := srv.Import(context.Background(), usecase.ImportOptions{Location: "sections.csv"})
	require.Error(t, err)
	assert.Nil(t, summary)

	schemaErr, ok := errors.AsType[*domainerrors.SchemaError](err)
	require.True(t, ok)
	assert.Equal(t, []string{"sectionName"}, schemaErr.Missing)
}

func TestImportRunner_CountsRowsAndPublishes(t *testing.T) {
	fx := createTestImportFixtures(t)
	srv := NewSectionImportService(fx.params)

	fx.serveCSV("sections.csv", strings.Join([]string{
		"sectionName,title,additionalData",
		`hero,Welcome,"{""layout"":""wide""}"`,
		"broken,Oops,[1]",
		"too,many,cells,here",
		",Nameless,",
		"benefits,Why us,",
	}, "\n"))
	fx.runTransactions()
	fx.factory.EXPECT().NewHomepageSectionRepository().Return(fx.sectionRepo)

	var created []string
	fx.sectionRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.HomepageSection")).
		Run(func(_ context.Context, section *entity.HomepageSection) {
			created = append(created, section.SectionName)
		}).
		Return(nil)

	var event *service.ImportCompletedEvent
	fx.publisher.EXPECT().
		PublishImportCompleted(mock.Anything, mock.AnythingOfType("*service.ImportCompletedEvent")).
		Run(func(_ context.Context, e *service.ImportCompletedEvent) { event = e }).
		Return(nil)

	summary, err := srv.Import(context.Background(), usecase.ImportOptions{Location: "sections.csv"})
	require.NoError(t, err)

	assert.Equal(t, []string{"hero", "benefits"}, created)
	assert.Equal(t, entity.DatasetSections, summary.Dataset)
	assert.Equal(t, 2, summary.Imported)
	assert.Equal(t, 3, summary.Failed)
	assert.Equal(t, 5, summary.Total())
	require.Len(t, summary.Failures, 3)
	assert.Equal(t, 3, summary.Failures[0].Line)
	assert.Equal(t, 4, summary.Failures[1].Line)
	assert.Equal(t, 5, summary.Failures[2].Line)

	require.NotNil(t, event)
	assert.Equal(t, summary.RunID.String(), event.RunID)
	assert.Equal(t, "sections", event.Dataset)
	assert.Equal(t, 2, event.Imported)
	assert.Equal(t, 3, event.Failed)
	assert.False(t, event.DryRun)
}

func TestImportRunner_PersistenceFailureIsRecoverable(t *testing.T) {
	fx := createTestImportFixtures(t)
	srv := NewSectionImportService(fx.params)

	fx.serveCSV("sections.csv", "sectionName\nhero\nbenefits\n")
	fx.runTransactions()
	fx.factory.EXPECT().NewHomepageSectionRepository().Return(fx.sectionRepo)

	connErr := domainerrors.NewPersistenceError(errors.New("connection refused"), "failed to create homepage section", true)
	fx.sectionRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(s *entity.HomepageSection) bool { return s.SectionName == "hero" })).
		Return(connErr).
		Once()
	fx.sectionRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(s *entity.HomepageSection) bool { return s.SectionName == "benefits" })).
		Return(nil).
		Once()
	fx.publisher.EXPECT().PublishImportCompleted(mock.Anything, mock.Anything).Return(nil)

	summary, err := srv.Import(context.Background(), usecase.ImportOptions{Location: "sections.csv"})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Imported)
	assert.Equal(t, 1, summary.Failed)
	require.Len(t, summary.Failures, 1)
	assert.Equal(t, 2, summary.Failures[0].Line)
	assert.Contains(t, summary.Failures[0].Reason, "connection refused")
}

func TestImportRunner_PublishFailureOnlyWarns(t *testing.T) {
	fx := createTestImportFixtures(t)
	srv := NewSectionImportService(fx.params)

	fx.serveCSV("sections.csv", "sectionName\nhero\n")
	fx.runTransactions()
	fx.factory.EXPECT().NewHomepageSectionRepository().Return(fx.sectionRepo)
	fx.sectionRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	fx.publisher.EXPECT().
		PublishImportCompleted(mock.Anything, mock.Anything).
		Return(errors.New("topic not found"))

	summary, err := srv.Import(context.Background(), usecase.ImportOptions{Location: "sections.csv"})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Imported)
}

func TestImportRunner_DryRunRollsBackEveryRow(t *testing.T) {
	fx := createTestImportFixtures(t)
	srv := NewSectionImportService(fx.params)

	fx.serveCSV("sections.csv", "sectionName\nhero\nbenefits\n")
	fx.factory.EXPECT().NewHomepageSectionRepository().Return(fx.sectionRepo)
	fx.sectionRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Times(2)

	var txResults []error
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			err := fn(fx.factory)
			txResults = append(txResults, err)

			return err
		})

	var event *service.ImportCompletedEvent
	fx.publisher.EXPECT().
		PublishImportCompleted(mock.Anything, mock.Anything).
		Run(func(_ context.Context, e *service.ImportCompletedEvent) { event = e }).
		Return(nil)

	summary, err := srv.Import(context.Background(), usecase.ImportOptions{Location: "sections.csv", DryRun: true})
	require.NoError(t, err)

	assert.True(t, summary.DryRun)
	assert.Equal(t, 2, summary.Imported)
	assert.Zero(t, summary.Failed)
	require.Len(t, txResults, 2)
	for _, txErr := range txResults {
		assert.ErrorIs(t, txErr, errDryRunRollback)
	}
	require.NotNil(t, event)
	assert.True(t, event.DryRun)
}

func TestImportRunner_FailureListIsBounded(t *testing.T) {
	fx := createTestImportFixtures(t)
	fx.params.Config.Import.MaxReportedFailures = 2
	srv := NewSectionImportService(fx.params)

	fx.serveCSV("sections.csv", "sectionName,title\n,a\n,b\n,c\n")
	fx.publisher.EXPECT().PublishImportCompleted(mock.Anything, mock.Anything).Return(nil)

	summary, err := srv.Import(context.Background(), usecase.ImportOptions{Location: "sections.csv"})
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Failed)
	assert.Len(t, summary.Failures, 2)
}

func TestImportRunner_BrokenStreamReturnsPartialSummary(t *testing.T) {
	fx := createTestImportFixtures(t)
	srv := NewSectionImportService(fx.params)

	source := io.MultiReader(
		strings.NewReader("sectionName\nhero\n"),
		iotest.ErrReader(errors.New("connection reset by peer")),
	)
	fx.opener.EXPECT().Open(mock.Anything, "gs://bucket/sections.csv").Return(io.NopCloser(source), nil)
	fx.runTransactions()
	fx.factory.EXPECT().NewHomepageSectionRepository().Return(fx.sectionRepo)
	fx.sectionRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishImportCompleted(mock.Anything, mock.Anything).Return(nil)

	summary, err := srv.Import(context.Background(), usecase.ImportOptions{Location: "gs://bucket/sections.csv"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset by peer")

	require.NotNil(t, summary)
	assert.Equal(t, 1, summary.Imported)
}

func TestImportRunner_StopsWhenContextIsCancelled(t *testing.T) {
	fx := createTestImportFixtures(t)
	srv := NewSectionImportService(fx.params)

	ctx, cancel := context.WithCancel(context.Background())
	fx.serveCSV("sections.csv", "sectionName\nhero\nbenefits\nfooter\n")
	fx.factory.EXPECT().NewHomepageSectionRepository().Return(fx.sectionRepo)
	fx.sectionRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			defer cancel()

			return fn(fx.factory)
		}).
		Once()
	fx.publisher.EXPECT().PublishImportCompleted(mock.Anything, mock.Anything).Return(nil)

	summary, err := srv.Import(ctx, usecase.ImportOptions{Location: "sections.csv"})
	require.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, err.Error(), "import interrupted")
	require.NotNil(t, summary)
	assert.Equal(t, 1, summary.Imported)
	assert.Equal(t, 1, summary.Total())
}
