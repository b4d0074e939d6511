package service

import (
	"testing"
	"time"

	"Club_Community/internal/model"
	"Club_Community/internal/pkg/errs"
)

func TestMembershipCreateDefaults(t *testing.T) {
	db := newTestDB(t)
	u := seedUser(t, db)
	c := seedCommunity(t, db, "")
	svc := NewMembershipService(db)

	m, err := svc.Create(MembershipCreateInput{UserID: u.ID, CommunityID: c.ID})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if m.Status != model.MembershipActive || m.Role != model.RoleVisitor {
		t.Fatalf("bad defaults: status=%q role=%q", m.Status, m.Role)
	}
	if m.MembershipNo == "" {
		t.Fatal("membership_no not generated")
	}
}

func TestMembershipCreateDuplicatePair(t *testing.T) {
	db := newTestDB(t)
	u := seedUser(t, db)
	c := seedCommunity(t, db, "")
	svc := NewMembershipService(db)

	if _, err := svc.Create(MembershipCreateInput{UserID: u.ID, CommunityID: c.ID}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	_, err := svc.Create(MembershipCreateInput{UserID: u.ID, CommunityID: c.ID})
	if !errs.IsKind(err, errs.KindConflict) {
		t.Fatalf("want conflict, got %v", err)
	}
}

func TestMembershipCreateValidation(t *testing.T) {
	db := newTestDB(t)
	u := seedUser(t, db)
	c := seedCommunity(t, db, "")
	svc := NewMembershipService(db)

	if _, err := svc.Create(MembershipCreateInput{UserID: u.ID, CommunityID: c.ID, Role: "admin"}); !errs.IsKind(err, errs.KindValidation) {
		t.Fatalf("unknown role should be rejected, got %v", err)
	}
	if _, err := svc.Create(MembershipCreateInput{UserID: u.ID, CommunityID: c.ID, Status: "frozen"}); !errs.IsKind(err, errs.KindValidation) {
		t.Fatalf("unknown status should be rejected, got %v", err)
	}
	if _, err := svc.Create(MembershipCreateInput{UserID: u.ID, CommunityID: 99999}); !errs.IsKind(err, errs.KindNotFound) {
		t.Fatalf("missing community should be not found, got %v", err)
	}
}

func TestMembershipUpdate(t *testing.T) {
	db := newTestDB(t)
	u := seedUser(t, db)
	c := seedCommunity(t, db, "")
	m := seedMembership(t, db, u.ID, c.ID, model.RoleVisitor, model.MembershipActive)
	svc := NewMembershipService(db)

	status := model.MembershipSuspended
	role := model.RoleStaff
	exp := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
	got, err := svc.Update(m.ID, MembershipUpdateInput{Status: &status, Role: &role, ExpiresAt: &exp})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Status != model.MembershipSuspended || got.Role != model.RoleStaff {
		t.Fatalf("update not applied: %+v", got)
	}
	if got.ExpiresAt == nil || !got.ExpiresAt.Equal(exp) {
		t.Fatalf("expires_at not applied: %v", got.ExpiresAt)
	}

	if _, err := svc.Update(m.ID, MembershipUpdateInput{}); !errs.IsKind(err, errs.KindValidation) {
		t.Fatalf("zero fields should be rejected, got %v", err)
	}
	if _, err := svc.Update(99999, MembershipUpdateInput{Status: &status}); !errs.IsKind(err, errs.KindNotFound) {
		t.Fatalf("want not found, got %v", err)
	}
}

func TestMembershipUpdateSameValue(t *testing.T) {
	db := newTestDB(t)
	u := seedUser(t, db)
	c := seedCommunity(t, db, "")
	m := seedMembership(t, db, u.ID, c.ID, model.RoleMember, model.MembershipActive)
	svc := NewMembershipService(db)

	// 原值重写不算没改到，必须成功
	status := model.MembershipActive
	got, err := svc.Update(m.ID, MembershipUpdateInput{Status: &status})
	if err != nil {
		t.Fatalf("same-value update should succeed: %v", err)
	}
	if got.Status != model.MembershipActive {
		t.Fatalf("status lost: %q", got.Status)
	}
}

func TestCommunityCreateGrantsStaff(t *testing.T) {
	db := newTestDB(t)
	u := seedUser(t, db)
	svc := NewCommunityService(db)

	c, err := svc.Create(u.ID, "chess club", "desc", "rules")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	var m model.Membership
	if err := db.Where("user_id = ? AND community_id = ?", u.ID, c.ID).First(&m).Error; err != nil {
		t.Fatalf("creator membership missing: %v", err)
	}
	if m.Role != model.RoleStaff {
		t.Fatalf("creator should be staff, got %q", m.Role)
	}

	if _, err := svc.Create(u.ID, "chess club", "", ""); !errs.IsKind(err, errs.KindConflict) {
		t.Fatalf("duplicate name should conflict, got %v", err)
	}
}
