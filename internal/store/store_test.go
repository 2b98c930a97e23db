package store

import (
	"path/filepath"
	"testing"

	"github.com/vishalgodara/Iota-Financing-Solutions/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestDiscussionPosts(t *testing.T) {
	s := openTestStore(t)

	posts, err := s.ListPosts(0)
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	if len(posts) != 0 {
		t.Fatalf("expected empty store, got %d posts", len(posts))
	}

	post := model.DiscussionPost{
		Author:  "Maria",
		Vehicle: "RAV4 Hybrid",
		Title:   "Six months in",
		Content: "Leasing was the right call for my commute.",
	}
	if err := s.CreatePost(&post); err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	if post.ID == "" {
		t.Error("CreatePost did not assign an id")
	}

	if err := s.LikePost(post.ID); err != nil {
		t.Fatalf("LikePost: %v", err)
	}
	if err := s.LikePost("no-such-id"); err == nil {
		t.Error("LikePost on unknown id should fail")
	}

	posts, err = s.ListPosts(10)
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("expected 1 post, got %d", len(posts))
	}
	if posts[0].Likes != 1 {
		t.Errorf("likes = %d, want 1", posts[0].Likes)
	}
	if posts[0].Author != "Maria" || posts[0].Vehicle != "RAV4 Hybrid" {
		t.Errorf("post round-trip mismatch: %+v", posts[0])
	}
}

func TestAppointments(t *testing.T) {
	s := openTestStore(t)

	appt := model.Appointment{
		CustomerName: "Dev",
		Email:        "dev@example.com",
		Model:        "Camry",
		TrimName:     "SE",
		Date:         "2026-09-03",
		TimeSlot:     "10:00",
	}
	if err := s.CreateAppointment(&appt); err != nil {
		t.Fatalf("CreateAppointment: %v", err)
	}

	taken, err := s.SlotTaken("2026-09-03", "10:00")
	if err != nil {
		t.Fatalf("SlotTaken: %v", err)
	}
	if !taken {
		t.Error("booked slot reported free")
	}

	taken, err = s.SlotTaken("2026-09-03", "11:00")
	if err != nil {
		t.Fatalf("SlotTaken: %v", err)
	}
	if taken {
		t.Error("free slot reported booked")
	}

	appts, err := s.ListAppointments()
	if err != nil {
		t.Fatalf("ListAppointments: %v", err)
	}
	if len(appts) != 1 || appts[0].CustomerName != "Dev" {
		t.Fatalf("unexpected appointments: %+v", appts)
	}
}

func TestRewardsLedger(t *testing.T) {
	s := openTestStore(t)

	points, err := s.MemberPoints("alex")
	if err != nil {
		t.Fatalf("MemberPoints: %v", err)
	}
	if points != 0 {
		t.Fatalf("new member points = %d, want 0", points)
	}

	if err := s.AddPoints("alex", "Monthly payment on time", 50); err != nil {
		t.Fatalf("AddPoints: %v", err)
	}
	if err := s.AddPoints("alex", "Refer a friend", 500); err != nil {
		t.Fatalf("AddPoints: %v", err)
	}

	points, err = s.MemberPoints("alex")
	if err != nil {
		t.Fatalf("MemberPoints: %v", err)
	}
	if points != 550 {
		t.Errorf("points = %d, want 550", points)
	}

	reward, ok := model.FindReward("Gas Discount")
	if !ok {
		t.Fatal("reward catalog missing Gas Discount")
	}

	remaining, err := s.Redeem("alex", reward)
	if err != nil {
		t.Fatalf("Redeem: %v", err)
	}
	if remaining != 50 {
		t.Errorf("remaining = %d, want 50", remaining)
	}

	// Second redemption must fail on the reduced balance.
	if _, err := s.Redeem("alex", reward); err == nil {
		t.Error("Redeem with insufficient points should fail")
	}

	activities, err := s.MemberActivities("alex", 10)
	if err != nil {
		t.Fatalf("MemberActivities: %v", err)
	}
	if len(activities) != 3 {
		t.Fatalf("expected 3 ledger entries, got %d", len(activities))
	}
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		points int
		want   model.RewardTier
	}{
		{0, model.TierSilver},
		{1999, model.TierSilver},
		{2000, model.TierGold},
		{4999, model.TierGold},
		{5000, model.TierPlatinum},
	}
	for _, tt := range tests {
		if got := model.TierFor(tt.points); got != tt.want {
			t.Errorf("TierFor(%d) = %s, want %s", tt.points, got, tt.want)
		}
	}
}
