package perftests

import (
	"context"
	"fmt"
	"math/rand"
	"sync/atomic"
	"testing"
	"time"

	bidding "lot-auction/internal/biddingService"
	model "lot-auction/internal/models"
	"lot-auction/internal/notify"
	"lot-auction/internal/persistence"
	repository "lot-auction/internal/repository"
	"lot-auction/utils"
)

// quietNotifier drops events so benchmarks measure the engine, not logging
type quietNotifier struct{}

func (quietNotifier) Notify(context.Context, model.BidCommitted) error { return nil }

var _ notify.Notifier = quietNotifier{}

// newBenchService boots an engine over numLots lots with numUsers pre-registered participants
func newBenchService(tb testing.TB, numLots, numUsers int) *bidding.BiddingService {
	tb.Helper()
	_ = utils.SetLevel("error")

	registry := repository.NewRegistry()
	for i := 0; i < numUsers; i++ {
		registry.Register(fmt.Sprintf("user_%d", i), "bench")
	}

	svc := bidding.NewBiddingService(
		repository.NewMemoryRepo(),
		repository.NewPendingTracker(),
		registry,
		persistence.NewMemoryStore(),
		quietNotifier{},
	)

	now := time.Now().UTC()
	lots := make([]model.Lot, 0, numLots)
	for i := 0; i < numLots; i++ {
		lots = append(lots, model.Lot{
			ID:        fmt.Sprintf("lot_%d", i),
			Title:     fmt.Sprintf("Benchmark lot %d", i),
			CreatedAt: now.Add(time.Duration(i) * time.Millisecond),
		})
	}
	if err := svc.Bootstrap(context.Background(), lots); err != nil {
		tb.Fatalf("failed to bootstrap: %v", err)
	}
	return svc
}

// placeBid runs the two-step intent/amount flow for one bid
func placeBid(ctx context.Context, svc *bidding.BiddingService, userID, lotID string, amount int64) error {
	if _, err := svc.OpenBidIntent(ctx, userID, lotID); err != nil {
		return err
	}
	_, err := svc.SubmitAmount(ctx, userID, fmt.Sprintf("%d", amount))
	return err
}

// Benchmark 1: bid flow - isolated lots (low contention)
func Benchmark_PlaceBid_Isolated(b *testing.B) {
	const numLots = 100
	svc := newBenchService(b, numLots, numLots)
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		userID := fmt.Sprintf("user_%d", i%numLots)
		lotID := fmt.Sprintf("lot_%d", i%numLots)
		if err := placeBid(ctx, svc, userID, lotID, int64(50+i)); err != nil {
			b.Fatalf("failed to place bid: %v", err)
		}
	}
}

// Benchmark 2: bid flow - shared lot (high contention)
func Benchmark_PlaceBid_ConcurrentSharedLot(b *testing.B) {
	const numUsers = 1000
	svc := newBenchService(b, 1, numUsers)
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()

	var lastBid int64 = 50

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			userID := fmt.Sprintf("user_%d", rnd.Intn(numUsers))
			nextBid := atomic.AddInt64(&lastBid, int64(rnd.Intn(5)+1))
			_ = placeBid(ctx, svc, userID, "lot_0", nextBid)
		}
	})
}

// Benchmark 3: GetLot - concurrent readers on a shared lot
func Benchmark_GetLot_ConcurrentSharedLot(b *testing.B) {
	svc := newBenchService(b, 1, 100)
	ctx := context.Background()

	for j := 0; j < 100; j++ {
		_ = placeBid(ctx, svc, fmt.Sprintf("user_%d", j), "lot_0", int64(50+j))
	}

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := svc.GetLot("lot_0"); err != nil {
				b.Fatalf("failed to get lot: %v", err)
			}
		}
	})
}

// Benchmark 4: mixed workload (readers + writers concurrently)
func Benchmark_MixedWorkload_SharedLot(b *testing.B) {
	const numUsers = 500
	svc := newBenchService(b, 1, numUsers)
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()

	var lastBid int64 = 50

	// Ratio: 70% readers, 30% writers
	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			if rnd.Intn(10) < 3 {
				userID := fmt.Sprintf("user_%d", rnd.Intn(numUsers))
				nextBid := atomic.AddInt64(&lastBid, int64(rnd.Intn(5)+1))
				_ = placeBid(ctx, svc, userID, "lot_0", nextBid)
				continue
			}
			_ = svc.ListLots()
		}
	})
}
