//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"hotel-guest-manager/internal/domain/guest"
	"hotel-guest-manager/internal/infra"
	"hotel-guest-manager/internal/pkg/errs"
	"hotel-guest-manager/internal/pkg/logger"
	"hotel-guest-manager/internal/usecase"
	"hotel-guest-manager/tests/common/builder"
	usecasemock "hotel-guest-manager/tests/mock/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newStore(t *testing.T) (*usecase.GuestStore, *usecasemock.MockSerializer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	serializer := usecasemock.NewMockSerializer(ctrl)
	return usecase.NewGuestStore(serializer, logger.Discard()), serializer
}

// populated returns a store holding joe (id 1) and emma (id 2).
func populated(t *testing.T) (*usecase.GuestStore, *usecasemock.MockSerializer) {
	t.Helper()
	store, serializer := newStore(t)
	require.True(t, store.Add(builder.NewGuestBuilder().BuildDomain()))
	require.True(t, store.Add(builder.NewGuestBuilder().WithName("emma").WithPhone("987654321").WithEmail("emma@example.com").BuildDomain()))
	return store, serializer
}

// =============================================================================
// Identity and CRUD
// =============================================================================

func TestGuestStore_Scenario(t *testing.T) {
	store, _ := populated(t)

	assert.Equal(t, 1, store.FindGuest(1).ID())
	assert.Equal(t, "joe", store.FindGuest(1).Name())
	assert.Equal(t, 2, store.FindGuest(2).ID())
	assert.Equal(t, 2, store.Count())

	assert.True(t, store.Delete(1))
	assert.Equal(t, 1, store.Count())
	assert.Nil(t, store.FindGuest(1))

	assert.True(t, store.ArchiveGuest(2))
	assert.False(t, store.ArchiveGuest(2))
	assert.True(t, store.FindGuest(2).IsArchived())
}

func TestGuestStore_Add(t *testing.T) {
	t.Run("ids start at 1 and increase", func(t *testing.T) {
		store, _ := newStore(t)
		for want := 1; want <= 5; want++ {
			require.True(t, store.Add(builder.NewGuestBuilder().BuildDomain()))
			assert.Equal(t, want, store.LastID())
			assert.Equal(t, want, store.FindGuest(want).ID())
		}
	})

	t.Run("caller supplied id is overwritten", func(t *testing.T) {
		store, _ := newStore(t)
		g, err := builder.NewGuestBuilder().BuildPersisted(40)
		require.NoError(t, err)

		require.True(t, store.Add(g))
		assert.Equal(t, 1, store.LastID())
		assert.Equal(t, "joe", store.FindGuest(1).Name())
		assert.Nil(t, store.FindGuest(40))
		assert.Equal(t, 40, g.ID(), "the caller's guest is not retained")
	})

	t.Run("re-adding a stored guest creates a distinct record", func(t *testing.T) {
		store, _ := populated(t)

		require.True(t, store.Add(store.FindGuest(1)))

		assert.Equal(t, 3, store.Count())
		require.NotNil(t, store.FindGuest(1))
		assert.Equal(t, 1, store.FindGuest(1).ID())
		assert.Equal(t, 3, store.FindGuest(3).ID())
		assert.NotSame(t, store.FindGuest(1), store.FindGuest(3))

		for _, id := range []int{1, 2, 3} {
			assert.Len(t, store.SearchByID(id), 1, "guest id %d must be held by exactly one guest", id)
		}

		require.True(t, store.Delete(3))
		assert.Empty(t, store.SearchByID(3))
		assert.Equal(t, "joe", store.FindGuest(1).Name())
	})

	t.Run("guest stored in another store keeps its id", func(t *testing.T) {
		first, _ := populated(t)
		second, _ := populated(t)

		require.True(t, second.Add(first.FindGuest(2)))

		assert.Equal(t, 2, first.FindGuest(2).ID())
		assert.Equal(t, "emma", second.FindGuest(3).Name())
	})

	t.Run("reservations of the added copy are independent", func(t *testing.T) {
		store, _ := newStore(t)
		g := builder.NewGuestBuilder().WithReservation(builder.NewReservationBuilder().WithID(1).Build()).BuildDomain()

		require.True(t, store.Add(g))
		require.True(t, g.DeleteReservation(1))

		assert.Equal(t, 1, store.FindGuest(1).ReservationCount())
	})

	t.Run("ids are never reused after delete", func(t *testing.T) {
		store, _ := populated(t)
		require.True(t, store.Delete(2))

		require.True(t, store.Add(builder.NewGuestBuilder().BuildDomain()))
		assert.Equal(t, 3, store.LastID())
		assert.Nil(t, store.FindGuest(2))
	})

	t.Run("independent stores have independent counters", func(t *testing.T) {
		first, _ := populated(t)
		second, _ := newStore(t)

		require.True(t, second.Add(builder.NewGuestBuilder().BuildDomain()))
		assert.Equal(t, 1, second.LastID())
		assert.Equal(t, 2, first.LastID())
		assert.Equal(t, 2, first.Count())
	})

	t.Run("nil guest", func(t *testing.T) {
		store, _ := newStore(t)
		assert.False(t, store.Add(nil))
		assert.Zero(t, store.Count())
		assert.Zero(t, store.LastID())
	})
}

func TestGuestStore_Delete(t *testing.T) {
	testCases := []struct {
		name      string
		id        int
		expected  bool
		wantCount int
	}{
		{name: "existing guest", id: 2, expected: true, wantCount: 1},
		{name: "unknown id", id: 3, expected: false, wantCount: 2},
		{name: "zero id", id: 0, expected: false, wantCount: 2},
		{name: "negative id", id: -1, expected: false, wantCount: 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store, _ := populated(t)

			assert.Equal(t, tc.expected, store.Delete(tc.id))
			assert.Equal(t, tc.wantCount, store.Count())
			if tc.expected {
				assert.Nil(t, store.FindGuest(tc.id))
			}
		})
	}
}

func TestGuestStore_Update(t *testing.T) {
	t.Run("changes contact details only", func(t *testing.T) {
		store, _ := populated(t)
		g := store.FindGuest(1)
		require.True(t, g.AddReservation(builder.NewReservationBuilder().Build()))
		require.True(t, store.ArchiveGuest(1))

		details := guest.Details{Name: "Joseph", Phone: "111", Email: "joseph@example.com"}
		assert.True(t, store.Update(1, details))

		updated := store.FindGuest(1)
		assert.Equal(t, 1, updated.ID())
		assert.Equal(t, details, updated.Details())
		assert.True(t, updated.IsArchived())
		assert.Equal(t, 1, updated.ReservationCount())
	})

	t.Run("unknown id", func(t *testing.T) {
		store, _ := populated(t)
		assert.False(t, store.Update(9, guest.Details{Name: "x"}))
		assert.Equal(t, "joe", store.FindGuest(1).Name())
	})
}

func TestGuestStore_Archive(t *testing.T) {
	store, _ := populated(t)

	assert.False(t, store.ArchiveGuest(5), "unknown id")
	assert.False(t, store.UnarchiveGuest(1), "active guest")

	assert.True(t, store.ArchiveGuest(1))
	assert.Equal(t, 1, store.ArchivedCount())
	assert.Equal(t, 1, store.ActiveCount())

	assert.False(t, store.ArchiveGuest(1))
	assert.True(t, store.FindGuest(1).IsArchived())

	assert.True(t, store.UnarchiveGuest(1))
	assert.False(t, store.UnarchiveGuest(1))
	assert.Zero(t, store.ArchivedCount())
}

// =============================================================================
// Listing and search
// =============================================================================

func TestGuestStore_List(t *testing.T) {
	t.Run("empty store", func(t *testing.T) {
		store, _ := newStore(t)

		assert.Equal(t, usecase.NoGuestsMessage, store.ListAll())
		assert.Equal(t, usecase.NoActiveGuestsMessage, store.ListActive())
		assert.Equal(t, usecase.NoArchivedGuestsMessage, store.ListArchived())
		assert.Zero(t, store.Count())
		assert.Zero(t, store.ActiveCount())
		assert.Zero(t, store.ArchivedCount())
	})

	t.Run("filters by archived flag", func(t *testing.T) {
		store, _ := populated(t)
		require.True(t, store.ArchiveGuest(2))

		all := store.ListAll()
		assert.Contains(t, all, "joe")
		assert.Contains(t, all, "emma")

		active := store.ListActive()
		assert.Contains(t, active, "joe")
		assert.NotContains(t, active, "emma")

		archived := store.ListArchived()
		assert.Contains(t, archived, "emma")
		assert.NotContains(t, archived, "joe")
	})

	t.Run("guests render with their reservations", func(t *testing.T) {
		store, _ := populated(t)
		store.FindGuest(1).AddReservation(builder.NewReservationBuilder().WithID(8).Build())

		all := store.ListAll()
		assert.Contains(t, all, "Reservation 8:")
		assert.Contains(t, all, guest.NoReservationsMessage, "emma has none")
		assert.Equal(t, 1, store.ReservationCount())
	})
}

func TestGuestStore_Search(t *testing.T) {
	t.Run("by id", func(t *testing.T) {
		store, _ := populated(t)

		found := store.SearchByID(2)
		require.Len(t, found, 1)
		assert.Equal(t, "emma", found[0].Name())

		assert.Empty(t, store.SearchByID(7))
	})

	t.Run("by name is case insensitive substring", func(t *testing.T) {
		store, _ := populated(t)
		require.True(t, store.Add(builder.NewGuestBuilder().WithName("Joanna").BuildDomain()))

		testCases := []struct {
			query string
			want  []string
		}{
			{query: "JOE", want: []string{"joe"}},
			{query: "jo", want: []string{"joe", "Joanna"}},
			{query: "MM", want: []string{"emma"}},
			{query: "zed", want: nil},
		}
		for _, tc := range testCases {
			t.Run(tc.query, func(t *testing.T) {
				var names []string
				for _, g := range store.SearchByName(tc.query) {
					names = append(names, g.Name())
				}
				assert.Equal(t, tc.want, names)
			})
		}
	})

	t.Run("reservation id matches across guests", func(t *testing.T) {
		store, _ := populated(t)
		store.FindGuest(1).AddReservation(builder.NewReservationBuilder().WithID(1).WithRoomNumber(10).Build())
		store.FindGuest(2).AddReservation(builder.NewReservationBuilder().WithID(1).WithRoomNumber(20).Build())
		store.FindGuest(2).AddReservation(builder.NewReservationBuilder().WithID(2).Build())

		matches := store.SearchReservationByID(1)
		require.Len(t, matches, 2)
		assert.Equal(t, 1, matches[0].Guest.ID())
		assert.Equal(t, 10, matches[0].Reservation.RoomNumber())
		assert.Equal(t, 2, matches[1].Guest.ID())
		assert.Equal(t, 20, matches[1].Reservation.RoomNumber())

		assert.Contains(t, usecase.FormatReservationMatches(matches), "Guest 2 (emma)")
		assert.Empty(t, store.SearchReservationByID(3))
	})
}

// =============================================================================
// Save and load
// =============================================================================

func TestGuestStore_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("writes the whole collection", func(t *testing.T) {
		store, serializer := populated(t)
		serializer.EXPECT().Write(ctx, gomock.Len(2)).Return(nil)

		require.NoError(t, store.Save(ctx))
	})

	t.Run("serializer failure is propagated", func(t *testing.T) {
		store, serializer := populated(t)
		cause := infra.PersistenceError{Kind: infra.KindIO}
		serializer.EXPECT().Write(ctx, gomock.Any()).Return(cause)

		err := store.Save(ctx)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrSaveFailed))
		assert.True(t, infra.IsKind(err, infra.KindIO))
	})
}

func TestGuestStore_Load(t *testing.T) {
	ctx := context.Background()

	persisted := func(t *testing.T, id int, b *builder.GuestBuilder) *guest.Guest {
		t.Helper()
		g, err := b.BuildPersisted(id)
		require.NoError(t, err)
		return g
	}

	t.Run("replaces the collection", func(t *testing.T) {
		store, serializer := populated(t)
		loaded := []*guest.Guest{
			persisted(t, 10, builder.NewGuestBuilder().WithName("sam").WithReservation(builder.NewReservationBuilder().Build())),
		}
		serializer.EXPECT().Read(ctx).Return(loaded, nil)

		require.NoError(t, store.Load(ctx))
		assert.Equal(t, 1, store.Count())
		assert.Nil(t, store.FindGuest(1))
		assert.Equal(t, "sam", store.FindGuest(10).Name())
		assert.Equal(t, 1, store.FindGuest(10).ReservationCount())
	})

	t.Run("counter continues past loaded ids", func(t *testing.T) {
		store, serializer := newStore(t)
		serializer.EXPECT().Read(ctx).Return([]*guest.Guest{
			persisted(t, 4, builder.NewGuestBuilder()),
			persisted(t, 9, builder.NewGuestBuilder()),
		}, nil)
		require.NoError(t, store.Load(ctx))

		require.True(t, store.Add(builder.NewGuestBuilder().BuildDomain()))
		assert.Equal(t, 10, store.LastID())
		assert.NotNil(t, store.FindGuest(10))
	})

	t.Run("counter never moves backwards", func(t *testing.T) {
		store, serializer := populated(t)
		serializer.EXPECT().Read(ctx).Return([]*guest.Guest{persisted(t, 1, builder.NewGuestBuilder())}, nil)
		require.NoError(t, store.Load(ctx))

		require.True(t, store.Add(builder.NewGuestBuilder().BuildDomain()))
		assert.Equal(t, 3, store.LastID())
	})

	t.Run("empty collection", func(t *testing.T) {
		store, serializer := populated(t)
		serializer.EXPECT().Read(ctx).Return([]*guest.Guest{}, nil)

		require.NoError(t, store.Load(ctx))
		assert.Zero(t, store.Count())
		assert.Equal(t, usecase.NoGuestsMessage, store.ListAll())
	})

	t.Run("serializer failure keeps current collection", func(t *testing.T) {
		store, serializer := populated(t)
		serializer.EXPECT().Read(ctx).Return(nil, infra.PersistenceError{Kind: infra.KindDecode})

		err := store.Load(ctx)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrLoadFailed))
		assert.True(t, infra.IsKind(err, infra.KindDecode))
		assert.Equal(t, 2, store.Count())
	})

	t.Run("duplicate guest ids are rejected", func(t *testing.T) {
		store, serializer := populated(t)
		serializer.EXPECT().Read(ctx).Return([]*guest.Guest{
			persisted(t, 3, builder.NewGuestBuilder()),
			persisted(t, 3, builder.NewGuestBuilder().WithName("twin")),
		}, nil)

		err := store.Load(ctx)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrLoadFailed))
		assert.True(t, errs.Is(err, errs.ErrCorruptCollection))
		assert.True(t, infra.IsKind(err, infra.KindDecode))
		assert.Equal(t, 2, store.Count())
		assert.Equal(t, "joe", store.FindGuest(1).Name())
	})

	t.Run("guest without id is rejected", func(t *testing.T) {
		store, serializer := newStore(t)
		serializer.EXPECT().Read(ctx).Return([]*guest.Guest{builder.NewGuestBuilder().BuildDomain()}, nil)

		err := store.Load(ctx)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrCorruptCollection))
		assert.Zero(t, store.Count())
	})
}
