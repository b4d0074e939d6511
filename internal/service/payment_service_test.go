package service

import (
	"testing"
	"time"

	"Club_Community/internal/model"
	"Club_Community/internal/pkg/errs"
)

func TestPaymentCreateValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewPaymentService(db)

	cases := []PaymentCreateInput{
		{CommunityID: 1, Description: "d", Amount: 100},       // 缺 user
		{UserID: 1, Description: "d", Amount: 100},            // 缺 community
		{UserID: 1, CommunityID: 1, Amount: 100},              // 缺描述
		{UserID: 1, CommunityID: 1, Description: "d"},         // 金额为零
		{UserID: 1, CommunityID: 1, Description: "d", Amount: -5},
		{UserID: 1, CommunityID: 1, Description: "d", Amount: 100, Status: "unknown"},
	}
	for i, in := range cases {
		if _, err := svc.Create(in); !errs.IsKind(err, errs.KindValidation) {
			t.Errorf("case %d: want validation, got %v", i, err)
		}
	}
}

func TestPaymentCreateDefaultsPending(t *testing.T) {
	db := newTestDB(t)
	u := seedUser(t, db)
	c := seedCommunity(t, db, "")
	svc := NewPaymentService(db)

	p, err := svc.Create(PaymentCreateInput{
		UserID: u.ID, CommunityID: c.ID, Description: "年费", Amount: 20000,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.Status != model.PaymentPending {
		t.Fatalf("want pending, got %q", p.Status)
	}
}

func TestPaymentMarkPaidWritesOutbox(t *testing.T) {
	db := newTestDB(t)
	u := seedUser(t, db)
	c := seedCommunity(t, db, "")
	svc := NewPaymentService(db)

	p, err := svc.Create(PaymentCreateInput{
		UserID: u.ID, CommunityID: c.ID, Description: "年费", Amount: 20000,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	paid := model.PaymentPaid
	method := "wechat"
	got, err := svc.Update(p.ID, &paid, &method)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Status != model.PaymentPaid || got.Method != "wechat" {
		t.Fatalf("update not applied: %+v", got)
	}
	if n := countRows(t, db, &model.BillingOutbox{}, "event_type = ? AND related_id = ?", model.OutboxPaymentPaid, p.ID); n != 1 {
		t.Fatalf("want 1 paid outbox row, got %d", n)
	}

	// 已 paid 再改方式不重复投递
	method2 := "cash"
	if _, err := svc.Update(p.ID, nil, &method2); err != nil {
		t.Fatalf("second Update: %v", err)
	}
	if n := countRows(t, db, &model.BillingOutbox{}, "event_type = ?", model.OutboxPaymentPaid); n != 1 {
		t.Fatalf("paid outbox must not duplicate, got %d", n)
	}
}

func TestPaymentUpdateErrors(t *testing.T) {
	db := newTestDB(t)
	svc := NewPaymentService(db)

	if _, err := svc.Update(1, nil, nil); !errs.IsKind(err, errs.KindValidation) {
		t.Fatalf("zero fields should be rejected, got %v", err)
	}
	bad := "unknown"
	if _, err := svc.Update(1, &bad, nil); !errs.IsKind(err, errs.KindValidation) {
		t.Fatalf("bad status should be rejected, got %v", err)
	}
	paid := model.PaymentPaid
	if _, err := svc.Update(99999, &paid, nil); !errs.IsKind(err, errs.KindNotFound) {
		t.Fatalf("want not found, got %v", err)
	}
}

func TestDashboardStats(t *testing.T) {
	db := newTestDB(t)
	c := seedCommunity(t, db, "")
	other := seedCommunity(t, db, "")
	svc := NewPaymentService(db)

	u1 := seedUser(t, db)
	u2 := seedUser(t, db)
	u3 := seedUser(t, db)
	u4 := seedUser(t, db)
	seedMembership(t, db, u1.ID, c.ID, model.RoleMember, model.MembershipActive)
	seedMembership(t, db, u2.ID, c.ID, model.RoleMember, model.MembershipActive)
	seedMembership(t, db, u3.ID, c.ID, model.RoleMember, model.MembershipExpired)
	seedMembership(t, db, u4.ID, c.ID, model.RoleMember, model.MembershipSuspended)
	// 其它社区的数据不应混入
	seedMembership(t, db, u1.ID, other.ID, model.RoleMember, model.MembershipActive)

	for _, p := range []model.Payment{
		{UserID: u1.ID, CommunityID: c.ID, Description: "a", Amount: 10000, Status: model.PaymentPaid},
		{UserID: u2.ID, CommunityID: c.ID, Description: "b", Amount: 5000, Status: model.PaymentPaid},
		{UserID: u3.ID, CommunityID: c.ID, Description: "c", Amount: 7000, Status: model.PaymentPending},
		{UserID: u1.ID, CommunityID: other.ID, Description: "d", Amount: 9999, Status: model.PaymentPaid},
	} {
		if err := db.Create(&p).Error; err != nil {
			t.Fatalf("seed payment: %v", err)
		}
	}
	if err := db.Create(&model.Event{CommunityID: c.ID, Title: "e1", StartAt: time.Now(), CreatorID: u1.ID}).Error; err != nil {
		t.Fatalf("seed event: %v", err)
	}

	stats, err := svc.DashboardStats(c.ID)
	if err != nil {
		t.Fatalf("DashboardStats: %v", err)
	}
	if stats.TotalMembers != 4 {
		t.Errorf("total = %d, want 4", stats.TotalMembers)
	}
	if stats.ActiveMembers != 2 {
		t.Errorf("active = %d, want 2", stats.ActiveMembers)
	}
	if stats.ExpiredMembers != 1 {
		t.Errorf("expired = %d, want 1", stats.ExpiredMembers)
	}
	if stats.PendingMembers != 1 {
		t.Errorf("pending = %d, want 1", stats.PendingMembers)
	}
	if stats.PaidAmount != 15000 {
		t.Errorf("paid = %d, want 15000", stats.PaidAmount)
	}
	if stats.TotalEvents != 1 {
		t.Errorf("events = %d, want 1", stats.TotalEvents)
	}
}
