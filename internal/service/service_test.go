package service

import (
	"fmt"
	"testing"

	"Club_Community/internal/model"
	"Club_Community/internal/repository/mysql"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// newTestDB 每个用例独立的内存库，约束行为与线上一致（唯一键冲突翻译）
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// 内存库只能单连接，多连接各自是空库
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := mysql.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

var userSeq int

func seedUser(t *testing.T, db *gorm.DB) *model.User {
	t.Helper()
	userSeq++
	u := &model.User{
		Email:    fmt.Sprintf("user%d@example.com", userSeq),
		Username: fmt.Sprintf("user%d", userSeq),
		Password: "x",
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

var communitySeq int

func seedCommunity(t *testing.T, db *gorm.DB, name string) *model.Community {
	t.Helper()
	communitySeq++
	if name == "" {
		name = fmt.Sprintf("community-%d", communitySeq)
	}
	c := &model.Community{Name: name, CreatorID: 1}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("seed community: %v", err)
	}
	return c
}

var membershipSeq int

func seedMembership(t *testing.T, db *gorm.DB, userID, communityID uint64, role, status string) *model.Membership {
	t.Helper()
	membershipSeq++
	m := &model.Membership{
		UserID:       userID,
		CommunityID:  communityID,
		MembershipNo: fmt.Sprintf("MTEST%08d", membershipSeq),
		Role:         role,
		Status:       status,
	}
	if err := db.Create(m).Error; err != nil {
		t.Fatalf("seed membership: %v", err)
	}
	return m
}

func countRows(t *testing.T, db *gorm.DB, m any, query string, args ...any) int64 {
	t.Helper()
	var n int64
	q := db.Model(m)
	if query != "" {
		q = q.Where(query, args...)
	}
	if err := q.Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}
