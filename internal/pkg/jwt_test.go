package pkg

import "testing"

func TestGenerateAndParse(t *testing.T) {
	pair, err := GeneratePair(42)
	if err != nil {
		t.Fatalf("GeneratePair: %v", err)
	}
	claims, err := ParseAccess(pair.AccessToken)
	if err != nil {
		t.Fatalf("ParseAccess: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("want user 42, got %d", claims.UserID)
	}
}

func TestParseAccessGarbage(t *testing.T) {
	if _, err := ParseAccess("not-a-token"); err == nil {
		t.Fatal("garbage token should fail")
	}
}

func TestRefreshRotatesPair(t *testing.T) {
	pair, err := GeneratePair(7)
	if err != nil {
		t.Fatalf("GeneratePair: %v", err)
	}
	next, err := Refresh(pair.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	claims, err := ParseAccess(next.AccessToken)
	if err != nil {
		t.Fatalf("ParseAccess: %v", err)
	}
	if claims.UserID != 7 {
		t.Fatalf("refresh should keep user, got %d", claims.UserID)
	}
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	pair, err := GeneratePair(7)
	if err != nil {
		t.Fatalf("GeneratePair: %v", err)
	}
	// access 与 refresh 密钥不同，拿 access 换新必须失败
	if _, err := Refresh(pair.AccessToken); err == nil {
		t.Fatal("access token must not pass as refresh")
	}
}
