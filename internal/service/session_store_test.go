package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go_4_vocab_srs/internal/model"
	"go_4_vocab_srs/internal/repository"
	"go_4_vocab_srs/internal/repository/mocks"
	"go_4_vocab_srs/internal/srs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sampleSession(name string, index int) *model.ReviewSession {
	cards := make([]model.SessionCard, 3)
	for i := range cards {
		cards[i] = model.SessionCard{CardID: uuid.New(), Term: "t", State: srs.NewState(testNow)}
	}
	return &model.ReviewSession{SessionKey: name, Cards: cards, CurrentIndex: index, StartedAt: testNow}
}

// newMockedStore はローカルは実 bbolt、リモートはモックの SessionStore を作ります
func newMockedStore(t *testing.T, remote *mocks.RemoteSessionRepository) *SessionStore {
	t.Helper()
	store := NewSessionStore(setupTestCache(t), remote, testConfig(), discardLogger())
	store.now = fixedClock(testNow)
	return store
}

func TestSessionStore_SaveThenLoadLocal(t *testing.T) {
	ctx := context.Background()
	key := model.SessionKey{TenantID: uuid.New(), Name: "default"}
	session := sampleSession(key.Name, 1)

	remote := mocks.NewRemoteSessionRepository(t)
	remote.On("Save", mock.Anything, key, mock.MatchedBy(func(s *model.StoredSession) bool {
		return s.SavedAt.Equal(testNow) && s.Session.CurrentIndex == 1
	})).Return(nil).Once()

	store := newMockedStore(t, remote)
	require.NoError(t, store.Save(ctx, key, session))

	// リモートのコピーは保存時点のもの
	session.CurrentIndex = 2

	got, err := store.Load(ctx, key)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 1, got.CurrentIndex, "ローカルも保存時点の内容")
	assert.Equal(t, session.Cards, got.Cards)

	require.NoError(t, store.Close())
	assert.Equal(t, int64(1), store.SyncStats().Succeeded)
}

func TestSessionStore_LocalExpiry(t *testing.T) {
	ctx := context.Background()
	key := model.SessionKey{TenantID: uuid.New(), Name: "default"}

	tests := []struct {
		name    string
		age     time.Duration
		wantHit bool
	}{
		{name: "23時間前の保存は有効", age: 23 * time.Hour, wantHit: true},
		{name: "ちょうど24時間前は有効", age: 24 * time.Hour, wantHit: true},
		{name: "25時間前の保存は期限切れ", age: 25 * time.Hour, wantHit: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remote := mocks.NewRemoteSessionRepository(t)
			remote.On("Save", mock.Anything, key, mock.Anything).Return(nil).Maybe()
			if !tt.wantHit {
				// ローカルが期限切れならリモートを見に行く (リモートも同じ時刻なので期限切れ)
				remote.On("Load", mock.Anything, key).Return(&model.StoredSession{
					SavedAt: testNow.Add(-tt.age),
					Session: sampleSession(key.Name, 1),
				}, nil).Once()
			}

			store := newMockedStore(t, remote)
			store.now = fixedClock(testNow.Add(-tt.age))
			require.NoError(t, store.Save(ctx, key, sampleSession(key.Name, 1)))
			store.now = fixedClock(testNow)

			got, err := store.Load(ctx, key)
			require.NoError(t, err)
			if tt.wantHit {
				assert.NotNil(t, got)
			} else {
				assert.Nil(t, got)
			}
			require.NoError(t, store.Close())
		})
	}
}

func TestSessionStore_LoadFallsBackToRemote(t *testing.T) {
	ctx := context.Background()
	key := model.SessionKey{TenantID: uuid.New(), Name: "tablet"}
	savedAt := testNow.Add(-2 * time.Hour)
	remoteSession := sampleSession(key.Name, 2)

	remote := mocks.NewRemoteSessionRepository(t)
	remote.On("Load", mock.Anything, key).Return(&model.StoredSession{SavedAt: savedAt, Session: remoteSession}, nil).Once()

	cache := setupTestCache(t)
	store := NewSessionStore(cache, remote, testConfig(), discardLogger())
	store.now = fixedClock(testNow)
	defer store.Close()

	got, err := store.Load(ctx, key)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 2, got.CurrentIndex)

	// ローカルに書き戻され、保存時刻はリモートのまま
	cached, err := cache.Load(ctx, key)
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.True(t, savedAt.Equal(cached.SavedAt))

	// 2回目はローカルから読むのでリモートは呼ばれない (Once で検証)
	got, err = store.Load(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, 2, got.CurrentIndex)
}

func TestSessionStore_LoadRemoteErrors(t *testing.T) {
	ctx := context.Background()
	key := model.SessionKey{TenantID: uuid.New(), Name: "default"}

	t.Run("リモートのエラーは存在しない扱い", func(t *testing.T) {
		remote := mocks.NewRemoteSessionRepository(t)
		remote.On("Load", mock.Anything, key).Return(nil, errors.New("remote down")).Once()
		store := newMockedStore(t, remote)
		defer store.Close()

		got, err := store.Load(ctx, key)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("両方の段が失敗したらエラー", func(t *testing.T) {
		local := mocks.NewLocalSessionCache(t)
		local.On("Load", mock.Anything, key).Return(nil, errors.New("disk error")).Once()
		remote := mocks.NewRemoteSessionRepository(t)
		remote.On("Load", mock.Anything, key).Return(nil, errors.New("remote down")).Once()

		store := NewSessionStore(local, remote, testConfig(), discardLogger())
		defer store.Close()

		got, err := store.Load(ctx, key)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, model.ErrInternalServer)
	})
}

func TestSessionStore_LocalWriteFailure(t *testing.T) {
	ctx := context.Background()
	key := model.SessionKey{TenantID: uuid.New(), Name: "default"}

	local := mocks.NewLocalSessionCache(t)
	local.On("Save", mock.Anything, key, mock.Anything).Return(errors.New("disk full")).Once()
	remote := mocks.NewRemoteSessionRepository(t)
	// ローカルが失敗してもリモートへの書き込みは行う
	remote.On("Save", mock.Anything, key, mock.Anything).Return(nil).Once()

	store := NewSessionStore(local, remote, testConfig(), discardLogger())
	err := store.Save(ctx, key, sampleSession(key.Name, 0))
	assert.ErrorIs(t, err, model.ErrPersistenceWrite)
	require.NoError(t, store.Close())
}

func TestSessionStore_RemoteFailureIsNotSurfaced(t *testing.T) {
	ctx := context.Background()
	key := model.SessionKey{TenantID: uuid.New(), Name: "default"}

	remote := mocks.NewRemoteSessionRepository(t)
	remote.On("Save", mock.Anything, key, mock.Anything).Return(errors.New("remote down"))
	remote.On("Delete", mock.Anything, key).Return(errors.New("remote down"))

	store := newMockedStore(t, remote)
	assert.NoError(t, store.Save(ctx, key, sampleSession(key.Name, 0)))
	assert.NoError(t, store.Clear(ctx, key))
	require.NoError(t, store.Close())

	stats := store.SyncStats()
	assert.Equal(t, int64(2), stats.Failed)
	assert.Equal(t, int64(0), stats.Succeeded)
	remote.AssertNumberOfCalls(t, "Save", 3) // 初回 + リトライ2回
}

func TestSessionStore_Clear(t *testing.T) {
	ctx := context.Background()
	key := model.SessionKey{TenantID: uuid.New(), Name: "default"}

	remote := mocks.NewRemoteSessionRepository(t)
	remote.On("Save", mock.Anything, key, mock.Anything).Return(nil).Once()
	remote.On("Delete", mock.Anything, key).Return(nil).Once()
	remote.On("Load", mock.Anything, key).Return(nil, nil).Once()

	store := newMockedStore(t, remote)
	require.NoError(t, store.Save(ctx, key, sampleSession(key.Name, 0)))
	require.NoError(t, store.Clear(ctx, key))
	require.NoError(t, store.Close())

	got, err := store.Load(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, got)
}

// slowDeleteRemote はリモートの削除が遅れて反映される状況を作ります
type slowDeleteRemote struct {
	repository.RemoteSessionRepository
	delay time.Duration
}

func (r slowDeleteRemote) Delete(ctx context.Context, key model.SessionKey) error {
	time.Sleep(r.delay)
	return r.RemoteSessionRepository.Delete(ctx, key)
}

func TestSessionStore_ClearWhileRemoteDeletePending(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	key := env.key(t, "default")

	remote := slowDeleteRemote{RemoteSessionRepository: env.remote, delay: 100 * time.Millisecond}
	store := NewSessionStore(env.cache, remote, testConfig(), discardLogger())
	store.now = fixedClock(testNow)

	require.NoError(t, store.Save(ctx, key, sampleSession(key.Name, 1)))
	require.Eventually(t, func() bool { return store.SyncStats().Succeeded >= 1 }, time.Second, 5*time.Millisecond,
		"リモートへの保存が終わるまで待つ")

	require.NoError(t, store.Clear(ctx, key))

	// リモートにはまだ行が残っている
	got, err := store.Load(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, got, "削除の反映前でも消したセッションは返さない")

	cached, err := env.cache.Load(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, cached, "リモートの古い行をローカルに書き戻さない")

	require.NoError(t, store.Close())
	got, err = store.Load(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSessionStore_LoadAfterClear(t *testing.T) {
	ctx := context.Background()
	key := model.SessionKey{TenantID: uuid.New(), Name: "default"}

	tests := []struct {
		name        string
		remoteSaved time.Time
		wantHit     bool
	}{
		{name: "消去前に保存されたリモートの行は無視", remoteSaved: testNow.Add(-time.Minute), wantHit: false},
		{name: "消去と同時刻の行も無視", remoteSaved: testNow, wantHit: false},
		{name: "消去後に別の端末で保存された行は使う", remoteSaved: testNow.Add(time.Minute), wantHit: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remote := mocks.NewRemoteSessionRepository(t)
			// 削除が失われてもリモートの行で復活しない
			remote.On("Delete", mock.Anything, key).Return(errors.New("remote down"))
			remote.On("Load", mock.Anything, key).Return(&model.StoredSession{
				SavedAt: tt.remoteSaved,
				Session: sampleSession(key.Name, 2),
			}, nil).Once()

			cache := setupTestCache(t)
			store := NewSessionStore(cache, remote, testConfig(), discardLogger())
			store.now = fixedClock(testNow)

			require.NoError(t, store.Clear(ctx, key))
			require.NoError(t, store.Close())
			store.now = fixedClock(testNow.Add(2 * time.Minute))

			got, err := store.Load(ctx, key)
			require.NoError(t, err)
			cached, err := cache.Load(ctx, key)
			require.NoError(t, err)
			if tt.wantHit {
				require.NotNil(t, got)
				assert.Equal(t, 2, got.CurrentIndex)
				assert.NotNil(t, cached, "新しい行はローカルに書き戻す")
			} else {
				assert.Nil(t, got)
				assert.Nil(t, cached)
			}
		})
	}
}

func TestSessionStore_Sweep(t *testing.T) {
	ctx := context.Background()
	cutoff := testNow.Add(-24 * time.Hour)

	local := mocks.NewLocalSessionCache(t)
	local.On("Sweep", mock.Anything, cutoff).Return(2, nil).Once()
	remote := mocks.NewRemoteSessionRepository(t)
	remote.On("DeleteExpired", mock.Anything, cutoff).Return(int64(3), nil).Once()

	store := NewSessionStore(local, remote, testConfig(), discardLogger())
	store.now = fixedClock(testNow)
	defer store.Close()

	res, err := store.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, SweepResult{Local: 2, Remote: 3}, res)

	t.Run("片方の失敗はエラーとして返す", func(t *testing.T) {
		local.On("Sweep", mock.Anything, cutoff).Return(0, errors.New("disk error")).Once()
		remote.On("DeleteExpired", mock.Anything, cutoff).Return(int64(1), nil).Once()

		res, err := store.Sweep(ctx)
		assert.Error(t, err)
		assert.Equal(t, int64(1), res.Remote)
	})
}
