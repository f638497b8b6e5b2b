package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"ustory-be/internal/dto"
	"ustory-be/internal/pkg/apperror"
	"ustory-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(_ context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func TestGreatLikeThenQuery(t *testing.T) {
	f := newFixture(t)
	writer := f.user("writer")
	reader := f.user("reader")
	paper := f.paper(f.diary(writer), writer, time.Now().Add(-time.Hour))
	svc := NewGreatService(f.uow, nil, f.log)

	before, err := svc.CountLikes(f.ctx, paper.Id)
	require.NoError(t, err)

	require.NoError(t, svc.Like(f.ctx, reader.Id, paper.Id))

	liked, err := svc.IsLiked(f.ctx, reader.Id, paper.Id)
	require.NoError(t, err)
	assert.True(t, liked.IsGreat)

	after, err := svc.CountLikes(f.ctx, paper.Id)
	require.NoError(t, err)
	assert.Equal(t, before.CountGreat+1, after.CountGreat)
}

func TestGreatDoubleLikeConflicts(t *testing.T) {
	f := newFixture(t)
	writer := f.user("writer")
	paper := f.paper(f.diary(writer), writer, time.Now().Add(-time.Hour))
	svc := NewGreatService(f.uow, nil, f.log)

	require.NoError(t, svc.Like(f.ctx, writer.Id, paper.Id))
	err := svc.Like(f.ctx, writer.Id, paper.Id)

	assert.True(t, apperror.Is(err, apperror.KindConflict), "got %v", err)
	count, err := svc.CountLikes(f.ctx, paper.Id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count.CountGreat)
}

func TestGreatLikeMissingOrDeletedPaper(t *testing.T) {
	f := newFixture(t)
	writer := f.user("writer")
	gone := f.paper(f.diary(writer), writer, time.Now().Add(-time.Hour), deleted())
	svc := NewGreatService(f.uow, nil, f.log)

	err := svc.Like(f.ctx, writer.Id, uuid.New())
	assert.True(t, apperror.Is(err, apperror.KindNotFound), "got %v", err)

	err = svc.Like(f.ctx, writer.Id, gone.Id)
	assert.True(t, apperror.Is(err, apperror.KindNotFound), "got %v", err)
}

func TestGreatUnlikeAbsent(t *testing.T) {
	f := newFixture(t)
	writer := f.user("writer")
	other := f.user("other")
	paper := f.paper(f.diary(writer), writer, time.Now().Add(-time.Hour))
	svc := NewGreatService(f.uow, nil, f.log)
	require.NoError(t, svc.Like(f.ctx, other.Id, paper.Id))

	err := svc.Unlike(f.ctx, writer.Id, paper.Id)

	assert.True(t, apperror.Is(err, apperror.KindNotFound), "got %v", err)
	count, err := svc.CountLikes(f.ctx, paper.Id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count.CountGreat)
}

func TestGreatRoundTrip(t *testing.T) {
	f := newFixture(t)
	writer := f.user("writer")
	paper := f.paper(f.diary(writer), writer, time.Now().Add(-time.Hour))
	svc := NewGreatService(f.uow, nil, f.log)

	require.NoError(t, svc.Like(f.ctx, writer.Id, paper.Id))
	require.NoError(t, svc.Unlike(f.ctx, writer.Id, paper.Id))

	liked, err := svc.IsLiked(f.ctx, writer.Id, paper.Id)
	require.NoError(t, err)
	assert.False(t, liked.IsGreat)

	// Back to absent: liking again works.
	assert.NoError(t, svc.Like(f.ctx, writer.Id, paper.Id))
}

func TestGreatConcurrentLikesOneWins(t *testing.T) {
	f := newFixture(t)
	writer := f.user("writer")
	reader := f.user("reader")
	paper := f.paper(f.diary(writer), writer, time.Now().Add(-time.Hour))
	svc := NewGreatService(f.uow, nil, f.log)

	const attempts = 8
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = svc.Like(f.ctx, reader.Id, paper.Id)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.True(t, apperror.Is(err, apperror.KindConflict), "got %v", err)
	}
	assert.Equal(t, 1, succeeded)

	count, err := svc.CountLikes(f.ctx, paper.Id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count.CountGreat)
}

func TestListLikedPapers(t *testing.T) {
	f := newFixture(t)
	writer := f.user("writer")
	reader := f.user("reader")
	diary := f.diary(writer)
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	older := f.paper(diary, writer, base)
	newer := f.paper(diary, writer, base.Add(time.Hour))
	removed := f.paper(diary, writer, base.Add(2*time.Hour), deleted())
	f.paper(diary, writer, base.Add(3*time.Hour)) // not liked

	f.great(reader, newer, base.Add(24*time.Hour))
	f.great(reader, older, base.Add(48*time.Hour))
	f.great(reader, removed, base.Add(72*time.Hour))
	f.great(writer, newer, base.Add(96*time.Hour))

	svc := NewGreatService(f.uow, nil, f.log)

	papers, err := svc.ListLikedPapers(f.ctx, reader.Id, 1, 20)
	require.NoError(t, err)

	assert.Equal(t, []uuid.UUID{older.Id, newer.Id}, ids(papers, func(p *dto.PaperResponse) uuid.UUID { return p.Id }))
	for _, p := range papers {
		assert.False(t, p.IsDeleted)
	}

	second, err := svc.ListLikedPapers(f.ctx, reader.Id, 2, 1)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, newer.Id, second[0].Id)

	beyond, err := svc.ListLikedPapers(f.ctx, reader.Id, 5, 20)
	require.NoError(t, err)
	assert.Empty(t, beyond)

	huge, err := svc.ListLikedPapers(f.ctx, reader.Id, (1<<60)+1, 16)
	require.NoError(t, err)
	assert.Empty(t, huge)
}

func TestListLikedPapersRejectsBadPaging(t *testing.T) {
	f := newFixture(t)
	svc := NewGreatService(f.uow, nil, f.log)

	for _, tc := range []struct{ page, size int }{{0, 20}, {1, 0}, {1, 101}, {-1, 10}} {
		_, err := svc.ListLikedPapers(f.ctx, uuid.New(), tc.page, tc.size)
		assert.True(t, apperror.Is(err, apperror.KindBadRequest), "page=%d size=%d", tc.page, tc.size)
	}
}

func TestLikePublishesNoticeForWriter(t *testing.T) {
	f := newFixture(t)
	writer := f.user("writer")
	reader := f.user("reader")
	paper := f.paper(f.diary(writer), writer, time.Now().Add(-time.Hour))
	publisher := &recordingPublisher{}
	svc := NewGreatService(f.uow, publisher, f.log)

	require.NoError(t, svc.Like(f.ctx, writer.Id, paper.Id))
	assert.Empty(t, publisher.events)

	require.NoError(t, svc.Like(f.ctx, reader.Id, paper.Id))
	require.Len(t, publisher.events, 1)

	evt := publisher.events[0]
	assert.Equal(t, events.TypeNoticeCreated, evt.EventType())
	assert.Equal(t, writer.Id.String(), evt.Payload()["recipient_id"])
	assert.Equal(t, reader.Id.String(), evt.Payload()["sender_id"])
	assert.Equal(t, paper.Id.String(), evt.Payload()["paper_id"])
	assert.Equal(t, "RECORD", evt.Payload()["type"])
}
