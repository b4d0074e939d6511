package pkg

import (
	cryptoRand "crypto/rand"
	"encoding/base64"
	"strings"
	"time"

	"math/big"
)

const membershipNoPrefix = "M"

func RandDigits(n int) (string, error) {
	var b strings.Builder
	for i := 0; i < n; i++ {
		x, err := cryptoRand.Int(cryptoRand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		b.WriteByte(byte('0' + x.Int64()))
	}
	return b.String(), nil
}

// MembershipNo 会员编号：前缀 + 8 位日期 + 4 位随机数。
// 不保证构造唯一，撞号由列上的唯一约束兜底。
func MembershipNo(now time.Time) (string, error) {
	suffix, err := RandDigits(4)
	if err != nil {
		return "", err
	}
	return membershipNoPrefix + now.Format("20060102") + suffix, nil
}

// RandToken 随机口令，用于三方登录建号时的占位密码
func RandToken(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := cryptoRand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
