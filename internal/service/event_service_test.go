package service

import (
	"testing"
	"time"

	"Club_Community/internal/model"
	"Club_Community/internal/pkg/errs"
)

func newEventFixture(t *testing.T) (*EventService, *model.User, *model.Community) {
	t.Helper()
	db := newTestDB(t)
	staff := seedUser(t, db)
	c := seedCommunity(t, db, "")
	seedMembership(t, db, staff.ID, c.ID, model.RoleStaff, model.MembershipActive)
	return NewEventService(db, nil), staff, c
}

func TestEventCreateRequiresStaff(t *testing.T) {
	db := newTestDB(t)
	member := seedUser(t, db)
	c := seedCommunity(t, db, "")
	seedMembership(t, db, member.ID, c.ID, model.RoleMember, model.MembershipActive)
	svc := NewEventService(db, nil)

	_, err := svc.Create(member.ID, EventCreateInput{
		CommunityID: c.ID,
		Title:       "hike",
		StartAt:     time.Now().Add(time.Hour),
	})
	if !errs.IsKind(err, errs.KindUnauthorized) {
		t.Fatalf("member should not create events, got %v", err)
	}
}

func TestRegisterPricedEventCreatesPendingPayment(t *testing.T) {
	db := newTestDB(t)
	staff := seedUser(t, db)
	attendee := seedUser(t, db)
	c := seedCommunity(t, db, "")
	seedMembership(t, db, staff.ID, c.ID, model.RoleStaff, model.MembershipActive)
	svc := NewEventService(db, nil)

	event, err := svc.Create(staff.ID, EventCreateInput{
		CommunityID: c.ID,
		Title:       "annual dinner",
		StartAt:     time.Now().Add(24 * time.Hour),
		Price:       15000,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	reg, payment, err := svc.Register(event.ID, attendee.ID, "")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if reg.Status != model.RegistrationRegistered {
		t.Fatalf("want registered, got %q", reg.Status)
	}
	if payment == nil {
		t.Fatal("priced event must produce a payment")
	}
	if payment.Amount != 15000 || payment.Status != model.PaymentPending {
		t.Fatalf("bad payment: amount=%d status=%q", payment.Amount, payment.Status)
	}
	if payment.RelatedType != model.RelatedTypeEvent || payment.RelatedID != event.ID {
		t.Fatalf("payment not linked to event: %+v", payment)
	}

	if n := countRows(t, db, &model.Payment{}, "user_id = ?", attendee.ID); n != 1 {
		t.Fatalf("want exactly 1 payment, got %d", n)
	}
	if n := countRows(t, db, &model.BillingOutbox{}, "event_type = ?", model.OutboxEventRegistration); n != 1 {
		t.Fatalf("want 1 outbox row, got %d", n)
	}
}

func TestRegisterFreeEventNoPayment(t *testing.T) {
	svc, staff, c := newEventFixture(t)
	event, err := svc.Create(staff.ID, EventCreateInput{
		CommunityID: c.ID,
		Title:       "open day",
		StartAt:     time.Now().Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, payment, err := svc.Register(event.ID, staff.ID, "")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if payment != nil {
		t.Fatalf("free event must not produce a payment, got %+v", payment)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	db := newTestDB(t)
	staff := seedUser(t, db)
	attendee := seedUser(t, db)
	c := seedCommunity(t, db, "")
	seedMembership(t, db, staff.ID, c.ID, model.RoleStaff, model.MembershipActive)
	svc := NewEventService(db, nil)

	event, err := svc.Create(staff.ID, EventCreateInput{
		CommunityID: c.ID,
		Title:       "workshop",
		StartAt:     time.Now().Add(time.Hour),
		Price:       5000,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, _, err := svc.Register(event.ID, attendee.ID, ""); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	_, _, err = svc.Register(event.ID, attendee.ID, "")
	if !errs.IsKind(err, errs.KindConflict) {
		t.Fatalf("duplicate registration should conflict, got %v", err)
	}
	// 重复报名整体回滚，不产生第二条缴费
	if n := countRows(t, db, &model.Payment{}, "user_id = ?", attendee.ID); n != 1 {
		t.Fatalf("want 1 payment, got %d", n)
	}
}

func TestRegisterWithExplicitStatus(t *testing.T) {
	svc, staff, c := newEventFixture(t)
	event, err := svc.Create(staff.ID, EventCreateInput{
		CommunityID: c.ID,
		Title:       "walk-in",
		StartAt:     time.Now().Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// 现场报名直接记 checked_in
	reg, _, err := svc.Register(event.ID, staff.ID, model.RegistrationCheckedIn)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if reg.Status != model.RegistrationCheckedIn {
		t.Fatalf("want checked_in, got %q", reg.Status)
	}

	if _, _, err := svc.Register(event.ID, staff.ID, "maybe"); !errs.IsKind(err, errs.KindValidation) {
		t.Fatalf("unknown status should be rejected, got %v", err)
	}
}

func TestRegisterUnknownEvent(t *testing.T) {
	svc, staff, _ := newEventFixture(t)
	_, _, err := svc.Register(99999, staff.ID, "")
	if !errs.IsKind(err, errs.KindNotFound) {
		t.Fatalf("want not found, got %v", err)
	}
}

func TestEarlyBirdPrice(t *testing.T) {
	svc, staff, c := newEventFixture(t)

	early := int64(8000)
	deadline := time.Now().Add(48 * time.Hour)
	event, err := svc.Create(staff.ID, EventCreateInput{
		CommunityID:       c.ID,
		Title:             "gala",
		StartAt:           time.Now().Add(72 * time.Hour),
		Price:             12000,
		EarlyBirdPrice:    &early,
		EarlyBirdDeadline: &deadline,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, payment, err := svc.Register(event.ID, staff.ID, "")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if payment == nil || payment.Amount != 8000 {
		t.Fatalf("early bird price should apply, got %+v", payment)
	}
}

func TestChargedPriceAfterDeadline(t *testing.T) {
	early := int64(8000)
	deadline := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	e := &model.Event{Price: 12000, EarlyBirdPrice: &early, EarlyBirdDeadline: &deadline}

	if got := e.ChargedPrice(deadline.Add(-time.Minute)); got != 8000 {
		t.Fatalf("before deadline want 8000, got %d", got)
	}
	if got := e.ChargedPrice(deadline); got != 12000 {
		t.Fatalf("at deadline want full price, got %d", got)
	}
}

func TestCancelRegistration(t *testing.T) {
	svc, staff, c := newEventFixture(t)
	event, err := svc.Create(staff.ID, EventCreateInput{
		CommunityID: c.ID,
		Title:       "meetup",
		StartAt:     time.Now().Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, _, err := svc.Register(event.ID, staff.ID, ""); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if err := svc.CancelRegistration(event.ID, staff.ID); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	// 重复取消幂等
	if err := svc.CancelRegistration(event.ID, staff.ID); err != nil {
		t.Fatalf("second Cancel: %v", err)
	}
	regs, err := svc.ListRegistrations(event.ID)
	if err != nil {
		t.Fatalf("ListRegistrations: %v", err)
	}
	if len(regs) != 1 || regs[0].Status != model.RegistrationCancelled {
		t.Fatalf("cancel should keep the row with status cancelled: %+v", regs)
	}

	if err := svc.CancelRegistration(event.ID, 99999); !errs.IsKind(err, errs.KindNotFound) {
		t.Fatalf("want not found, got %v", err)
	}
}

func TestEventDeleteRestrictedByRegistrations(t *testing.T) {
	svc, staff, c := newEventFixture(t)
	event, err := svc.Create(staff.ID, EventCreateInput{
		CommunityID: c.ID,
		Title:       "course",
		StartAt:     time.Now().Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, _, err := svc.Register(event.ID, staff.ID, ""); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if err := svc.Delete(staff.ID, event.ID); !errs.IsKind(err, errs.KindConflict) {
		t.Fatalf("delete with registrations should conflict, got %v", err)
	}

	empty, err := svc.Create(staff.ID, EventCreateInput{
		CommunityID: c.ID,
		Title:       "empty",
		StartAt:     time.Now().Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.Delete(staff.ID, empty.ID); err != nil {
		t.Fatalf("delete without registrations: %v", err)
	}
	if _, err := svc.Get(empty.ID); !errs.IsKind(err, errs.KindNotFound) {
		t.Fatalf("deleted event should be gone, got %v", err)
	}
}

func TestEventUpdate(t *testing.T) {
	svc, staff, c := newEventFixture(t)
	event, err := svc.Create(staff.ID, EventCreateInput{
		CommunityID: c.ID,
		Title:       "old title",
		StartAt:     time.Now().Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	title := "new title"
	price := int64(2000)
	got, err := svc.Update(staff.ID, event.ID, EventUpdateInput{Title: &title, Price: &price})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Title != "new title" || got.Price != 2000 {
		t.Fatalf("update not applied: %+v", got)
	}

	if _, err := svc.Update(staff.ID, event.ID, EventUpdateInput{}); !errs.IsKind(err, errs.KindValidation) {
		t.Fatalf("zero fields should be rejected, got %v", err)
	}
}
