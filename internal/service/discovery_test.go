package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/juju/clock/testclock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"procurement_sync/internal/config"
	"procurement_sync/internal/domain"
	"procurement_sync/internal/service/mocks"
	"procurement_sync/testdata/utils"
)

var qualifying = []string{"FORWARDED", "COMPLETED"}

type DiscoveryServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	projects    *mocks.MockProjectStore
	donations   *mocks.MockDonationStore
	reviews     *mocks.MockReviewStore
	checkpoints *mocks.MockCheckpointStore
	feed        *mocks.MockFeedReader
	notifier    *mocks.MockNotifier

	service *DiscoveryService
	cfg     config.DiscoveryConfig
	now     time.Time
	ctx     context.Context
}

func (s *DiscoveryServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx = context.Background()

	s.projects = mocks.NewMockProjectStore(s.ctrl)
	s.donations = mocks.NewMockDonationStore(s.ctrl)
	s.reviews = mocks.NewMockReviewStore(s.ctrl)
	s.checkpoints = mocks.NewMockCheckpointStore(s.ctrl)
	s.feed = mocks.NewMockFeedReader(s.ctrl)
	s.notifier = mocks.NewMockNotifier(s.ctrl)

	s.cfg = config.DiscoveryConfig{
		JobName:        "test-discovery",
		Lookback:       14 * 24 * time.Hour,
		PageSize:       100,
		MaxPages:       5,
		StallThreshold: 3,
		ActiveStatuses: []string{
			domain.StatusActiveEnquiries,
			domain.StatusActiveTendering,
			domain.StatusActiveAuction,
			domain.StatusActiveQualification,
			domain.StatusActiveAwarded,
		},
	}
	s.now = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.service = NewDiscoveryService(
		NewWatchlistBuilder(s.projects, s.donations, qualifying),
		s.reviews,
		s.checkpoints,
		s.feed,
		s.notifier,
		testclock.NewClock(s.now),
		logger,
		s.cfg,
	)
}

func (s *DiscoveryServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestDiscoveryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DiscoveryServiceTestSuite))
}

func (s *DiscoveryServiceTestSuite) expectWatchlist(projects ...domain.Project) {
	ids := make([]string, len(projects))
	for i, p := range projects {
		ids[i] = p.ID
	}
	s.projects.EXPECT().ListDiscoveryCandidates(s.ctx).Return(projects, nil)
	s.donations.EXPECT().FundedProjectIDs(s.ctx, ids, qualifying).Return(ids, nil)
}

func (s *DiscoveryServiceTestSuite) expectCheckpoint(position string) {
	s.checkpoints.EXPECT().Get(s.ctx, "test-discovery").Return(&domain.Checkpoint{
		JobName:  "test-discovery",
		Position: position,
	}, nil)
}

// expectSaves records every persisted position in order.
func (s *DiscoveryServiceTestSuite) expectSaves(times int) *[]string {
	var saved []string
	s.checkpoints.EXPECT().Upsert(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, cp *domain.Checkpoint) error {
			s.Equal("test-discovery", cp.JobName)
			saved = append(saved, cp.Position)
			return nil
		},
	).Times(times)
	return &saved
}

func (s *DiscoveryServiceTestSuite) query(offset string) domain.FeedQuery {
	return domain.FeedQuery{
		Offset: offset,
		Limit:  100,
		Fields: []string{"procuringEntity", "status", "tenderID"},
	}
}

func projectA() domain.Project {
	return domain.Project{ID: "proj-a", FacilityName: "Hospital A", EDRPOU: utils.Ptr("12345678")}
}

func tenderItem(id, edrpou, status string) domain.FeedItem {
	return domain.FeedItem{
		ID:       id,
		TenderID: "UA-2026-03-10-" + id,
		Status:   status,
		ProcuringEntity: domain.ProcuringEntity{
			Name:       "Village council " + edrpou,
			Identifier: edrpou,
		},
	}
}

func (s *DiscoveryServiceTestSuite) TestDiscover_EmptyWatchlist() {
	s.projects.EXPECT().ListDiscoveryCandidates(s.ctx).Return(nil, nil)

	result, err := s.service.Discover(s.ctx)

	s.NoError(err)
	s.Equal(0, result.PagesScanned)
	s.Equal(0, result.FeedItemsProcessed)
	s.Equal(0, result.MatchesFound)
	s.Empty(result.Errors)
}

func (s *DiscoveryServiceTestSuite) TestDiscover_FirstRunMatchesOneProject() {
	s.expectWatchlist(projectA())
	s.expectCheckpoint("")

	start := "2026-03-01T12:00:00Z"
	s.feed.EXPECT().FetchFeedPage(s.ctx, s.query(start)).Return(&domain.FeedPage{
		Items: []domain.FeedItem{
			tenderItem("t-1", "12345678", domain.StatusActiveTendering),
			tenderItem("t-2", "87654321", domain.StatusActiveTendering),
		},
		NextOffset: "1773000000.001",
	}, nil)
	s.feed.EXPECT().FetchFeedPage(s.ctx, s.query("1773000000.001")).Return(&domain.FeedPage{
		NextOffset: "1773000000.001",
	}, nil)

	s.reviews.EXPECT().HasDiscovery(s.ctx, "proj-a", "t-1").Return(false, nil)

	var created domain.ReviewRecord
	s.reviews.EXPECT().Create(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, r *domain.ReviewRecord) error {
			created = *r
			return nil
		},
	)
	s.notifier.EXPECT().SendAdminMatchNotice(s.ctx, domain.AdminMatchNotice{
		FacilityName: "Hospital A",
		EDRPOU:       "12345678",
		TenderID:     "UA-2026-03-10-t-1",
		EntityName:   "Village council 12345678",
		TenderStatus: domain.StatusActiveTendering,
		URL:          "https://prozorro.gov.ua/tender/UA-2026-03-10-t-1",
	}).Return(nil)

	saved := s.expectSaves(2)

	result, err := s.service.Discover(s.ctx)

	s.NoError(err)
	s.Equal(2, result.PagesScanned)
	s.Equal(2, result.FeedItemsProcessed)
	s.Equal(1, result.MatchesFound)
	s.Empty(result.Errors)
	s.Equal([]string{"1773000000.001", "1773000000.001"}, *saved)

	s.Equal(domain.ReviewKindDiscovery, created.Kind)
	s.False(created.Public)
	s.Equal("proj-a", created.ProjectID)
	s.Require().NotNil(created.Discovery)
	s.Nil(created.StatusChange)
	s.Equal("t-1", created.Discovery.RecordID)
	s.Equal("t-1", created.ExternalRecordID())
}

func (s *DiscoveryServiceTestSuite) TestDiscover_SecondRunResumesFromCheckpoint() {
	s.expectWatchlist(projectA())
	s.expectCheckpoint("1773000000.001")

	s.feed.EXPECT().FetchFeedPage(s.ctx, s.query("1773000000.001")).Return(&domain.FeedPage{
		NextOffset: "1773000000.001",
	}, nil)

	saved := s.expectSaves(1)

	result, err := s.service.Discover(s.ctx)

	s.NoError(err)
	s.Equal(1, result.PagesScanned)
	s.Equal(0, result.FeedItemsProcessed)
	s.Equal(0, result.MatchesFound)
	s.Equal([]string{"1773000000.001"}, *saved)
}

func (s *DiscoveryServiceTestSuite) TestDiscover_SkipsAlreadyRaisedMatch() {
	s.expectWatchlist(projectA())
	s.expectCheckpoint("100")

	s.feed.EXPECT().FetchFeedPage(s.ctx, s.query("100")).Return(&domain.FeedPage{
		Items:      []domain.FeedItem{tenderItem("t-1", "12345678", domain.StatusActiveAuction)},
		NextOffset: "200",
	}, nil)
	s.feed.EXPECT().FetchFeedPage(s.ctx, s.query("200")).Return(&domain.FeedPage{}, nil)

	s.reviews.EXPECT().HasDiscovery(s.ctx, "proj-a", "t-1").Return(true, nil)
	s.expectSaves(2)

	result, err := s.service.Discover(s.ctx)

	s.NoError(err)
	s.Equal(1, result.FeedItemsProcessed)
	s.Equal(0, result.MatchesFound)
	s.Empty(result.Errors)
}

func (s *DiscoveryServiceTestSuite) TestDiscover_NotifiesEveryProjectSharingIdentifier() {
	projectB := domain.Project{ID: "proj-b", FacilityName: "School B", EDRPOU: utils.Ptr("12345678")}
	s.expectWatchlist(projectA(), projectB)
	s.expectCheckpoint("100")

	item := tenderItem("t-9", "12345678", domain.StatusActiveEnquiries)
	item.TenderID = ""
	item.ProcuringEntity.Name = ""

	s.feed.EXPECT().FetchFeedPage(s.ctx, s.query("100")).Return(&domain.FeedPage{
		Items:      []domain.FeedItem{item},
		NextOffset: "200",
	}, nil)
	s.feed.EXPECT().FetchFeedPage(s.ctx, s.query("200")).Return(&domain.FeedPage{}, nil)

	s.reviews.EXPECT().HasDiscovery(s.ctx, "proj-a", "t-9").Return(false, nil)
	s.reviews.EXPECT().HasDiscovery(s.ctx, "proj-b", "t-9").Return(false, nil)
	s.reviews.EXPECT().Create(s.ctx, gomock.Any()).Return(nil).Times(2)

	var notices []domain.AdminMatchNotice
	s.notifier.EXPECT().SendAdminMatchNotice(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, n domain.AdminMatchNotice) error {
			notices = append(notices, n)
			return nil
		},
	).Times(2)
	s.expectSaves(2)

	result, err := s.service.Discover(s.ctx)

	s.NoError(err)
	s.Equal(2, result.MatchesFound)
	s.Require().Len(notices, 2)
	s.Equal("Hospital A", notices[0].FacilityName)
	s.Equal("School B", notices[1].FacilityName)
	s.Equal("t-9", notices[0].TenderID)
	s.Equal("12345678", notices[0].EntityName)
	s.Equal("https://prozorro.gov.ua/tender/t-9", notices[0].URL)
}

func (s *DiscoveryServiceTestSuite) TestDiscover_IgnoresInactiveStatuses() {
	s.expectWatchlist(projectA())
	s.expectCheckpoint("100")

	s.feed.EXPECT().FetchFeedPage(s.ctx, s.query("100")).Return(&domain.FeedPage{
		Items: []domain.FeedItem{
			tenderItem("t-1", "12345678", "draft"),
			tenderItem("t-2", "12345678", domain.StatusComplete),
			tenderItem("t-3", "12345678", domain.StatusCancelled),
			tenderItem("t-4", "", domain.StatusActiveTendering),
		},
		NextOffset: "200",
	}, nil)
	s.feed.EXPECT().FetchFeedPage(s.ctx, s.query("200")).Return(&domain.FeedPage{}, nil)
	s.expectSaves(2)

	result, err := s.service.Discover(s.ctx)

	s.NoError(err)
	s.Equal(4, result.FeedItemsProcessed)
	s.Equal(0, result.MatchesFound)
}

func (s *DiscoveryServiceTestSuite) TestDiscover_FeedErrorKeepsLastProcessedOffset() {
	s.expectWatchlist(projectA())
	s.expectCheckpoint("100")

	s.feed.EXPECT().FetchFeedPage(s.ctx, s.query("100")).Return(&domain.FeedPage{
		Items:      []domain.FeedItem{tenderItem("t-1", "99999999", domain.StatusActiveTendering)},
		NextOffset: "200",
	}, nil)
	s.feed.EXPECT().FetchFeedPage(s.ctx, s.query("200")).Return(nil, errors.New("503 service unavailable"))

	saved := s.expectSaves(2)

	result, err := s.service.Discover(s.ctx)

	s.NoError(err)
	s.Equal(1, result.PagesScanned)
	s.Equal(1, result.FeedItemsProcessed)
	s.Require().Len(result.Errors, 1)
	s.Contains(result.Errors[0], "feed error")
	s.Equal([]string{"200", "200"}, *saved)
	s.Equal("200", result.LastPosition)
}

func (s *DiscoveryServiceTestSuite) TestDiscover_FeedErrorOnFirstRunSavesStart() {
	s.expectWatchlist(projectA())
	s.expectCheckpoint("")

	start := "2026-03-01T12:00:00Z"
	s.feed.EXPECT().FetchFeedPage(s.ctx, s.query(start)).Return(nil, errors.New("timeout"))
	saved := s.expectSaves(1)

	result, err := s.service.Discover(s.ctx)

	s.NoError(err)
	s.Equal(0, result.PagesScanned)
	s.Len(result.Errors, 1)
	s.Equal([]string{start}, *saved)
}

func (s *DiscoveryServiceTestSuite) TestDiscover_StopsAfterStalledOffset() {
	s.expectWatchlist(projectA())
	s.expectCheckpoint("100")

	s.feed.EXPECT().FetchFeedPage(s.ctx, s.query("100")).Return(&domain.FeedPage{
		Items:      []domain.FeedItem{tenderItem("t-1", "99999999", domain.StatusActiveTendering)},
		NextOffset: "100",
	}, nil).Times(2)
	s.feed.EXPECT().FetchFeedPage(s.ctx, s.query("100")).Return(&domain.FeedPage{
		Items: []domain.FeedItem{tenderItem("t-1", "99999999", domain.StatusActiveTendering)},
	}, nil)

	saved := s.expectSaves(1)

	result, err := s.service.Discover(s.ctx)

	s.NoError(err)
	s.Equal(3, result.PagesScanned)
	s.Equal(3, result.FeedItemsProcessed)
	s.Equal([]string{"100"}, *saved)
}

func (s *DiscoveryServiceTestSuite) TestDiscover_RespectsPageCap() {
	s.expectWatchlist(projectA())
	s.expectCheckpoint("0")

	offsets := []string{"0", "1", "2", "3", "4", "5"}
	for i := 0; i < s.cfg.MaxPages; i++ {
		s.feed.EXPECT().FetchFeedPage(s.ctx, s.query(offsets[i])).Return(&domain.FeedPage{
			Items:      []domain.FeedItem{tenderItem("t", "99999999", domain.StatusActiveTendering)},
			NextOffset: offsets[i+1],
		}, nil)
	}
	saved := s.expectSaves(s.cfg.MaxPages + 1)

	result, err := s.service.Discover(s.ctx)

	s.NoError(err)
	s.Equal(5, result.PagesScanned)
	s.Equal([]string{"1", "2", "3", "4", "5", "5"}, *saved)
}

func (s *DiscoveryServiceTestSuite) TestDiscover_ProjectFailureDoesNotAbortScan() {
	projectB := domain.Project{ID: "proj-b", FacilityName: "School B", EDRPOU: utils.Ptr("12345678")}
	s.expectWatchlist(projectA(), projectB)
	s.expectCheckpoint("100")

	s.feed.EXPECT().FetchFeedPage(s.ctx, s.query("100")).Return(&domain.FeedPage{
		Items:      []domain.FeedItem{tenderItem("t-1", "12345678", domain.StatusActiveTendering)},
		NextOffset: "200",
	}, nil)
	s.feed.EXPECT().FetchFeedPage(s.ctx, s.query("200")).Return(&domain.FeedPage{}, nil)

	s.reviews.EXPECT().HasDiscovery(s.ctx, "proj-a", "t-1").Return(false, nil)
	s.reviews.EXPECT().Create(s.ctx, gomock.Any()).Return(errors.New("connection reset"))

	s.reviews.EXPECT().HasDiscovery(s.ctx, "proj-b", "t-1").Return(false, nil)
	s.reviews.EXPECT().Create(s.ctx, gomock.Any()).Return(nil)
	s.notifier.EXPECT().SendAdminMatchNotice(s.ctx, gomock.Any()).Return(nil)

	s.expectSaves(2)

	result, err := s.service.Discover(s.ctx)

	s.NoError(err)
	s.Equal(1, result.MatchesFound)
	s.Require().Len(result.Errors, 1)
	s.Contains(result.Errors[0], "Hospital A")
	s.Contains(result.Errors[0], "connection reset")
}

func (s *DiscoveryServiceTestSuite) TestDiscover_NotifierFailureIsRecorded() {
	s.expectWatchlist(projectA())
	s.expectCheckpoint("100")

	s.feed.EXPECT().FetchFeedPage(s.ctx, s.query("100")).Return(&domain.FeedPage{
		Items:      []domain.FeedItem{tenderItem("t-1", "12345678", domain.StatusActiveTendering)},
		NextOffset: "200",
	}, nil)
	s.feed.EXPECT().FetchFeedPage(s.ctx, s.query("200")).Return(&domain.FeedPage{}, nil)

	s.reviews.EXPECT().HasDiscovery(s.ctx, "proj-a", "t-1").Return(false, nil)
	s.reviews.EXPECT().Create(s.ctx, gomock.Any()).Return(nil)
	s.notifier.EXPECT().SendAdminMatchNotice(s.ctx, gomock.Any()).Return(errors.New("broker down"))
	s.expectSaves(2)

	result, err := s.service.Discover(s.ctx)

	s.NoError(err)
	s.Equal(0, result.MatchesFound)
	s.Require().Len(result.Errors, 1)
	s.Contains(result.Errors[0], "send admin notice")
}

func (s *DiscoveryServiceTestSuite) TestDiscover_CheckpointSaveFailurePropagates() {
	s.expectWatchlist(projectA())
	s.expectCheckpoint("100")

	s.feed.EXPECT().FetchFeedPage(s.ctx, s.query("100")).Return(&domain.FeedPage{
		Items:      []domain.FeedItem{tenderItem("t-1", "99999999", domain.StatusActiveTendering)},
		NextOffset: "200",
	}, nil)
	s.checkpoints.EXPECT().Upsert(s.ctx, gomock.Any()).Return(errors.New("disk full"))

	result, err := s.service.Discover(s.ctx)

	s.Error(err)
	s.Contains(err.Error(), "save checkpoint")
	s.Require().NotNil(result)
	s.Equal(1, result.PagesScanned)
	s.Equal(1, result.FeedItemsProcessed)
}

func (s *DiscoveryServiceTestSuite) TestDiscover_CheckpointLoadFailure() {
	s.expectWatchlist(projectA())
	s.checkpoints.EXPECT().Get(s.ctx, "test-discovery").Return(nil, errors.New("no route to host"))

	result, err := s.service.Discover(s.ctx)

	s.NoError(err)
	s.Equal(0, result.PagesScanned)
	s.Require().Len(result.Errors, 1)
	s.Contains(result.Errors[0], "checkpoint error")
}

func (s *DiscoveryServiceTestSuite) TestDiscover_WatchlistFailure() {
	s.projects.EXPECT().ListDiscoveryCandidates(s.ctx).Return(nil, errors.New("relation does not exist"))

	result, err := s.service.Discover(s.ctx)

	s.NoError(err)
	s.Require().Len(result.Errors, 1)
	s.Contains(result.Errors[0], "watchlist error")
}

func TestAdvanceCursor(t *testing.T) {
	tests := []struct {
		name         string
		cursor       feedCursor
		next         string
		want         feedCursor
		wantAdvanced bool
		wantStop     bool
	}{
		{
			name:         "advances to new offset",
			cursor:       feedCursor{position: "100", stalls: 2},
			next:         "200",
			want:         feedCursor{position: "200"},
			wantAdvanced: true,
		},
		{
			name:   "missing offset stalls",
			cursor: feedCursor{position: "100"},
			next:   "",
			want:   feedCursor{position: "100", stalls: 1},
		},
		{
			name:   "unchanged offset stalls",
			cursor: feedCursor{position: "100", stalls: 1},
			next:   "100",
			want:   feedCursor{position: "100", stalls: 2},
		},
		{
			name:     "third stall stops",
			cursor:   feedCursor{position: "100", stalls: 2},
			next:     "100",
			want:     feedCursor{position: "100", stalls: 3},
			wantStop: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, advanced, stop := advanceCursor(tt.cursor, tt.next, 3)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantAdvanced, advanced)
			assert.Equal(t, tt.wantStop, stop)
		})
	}
}
