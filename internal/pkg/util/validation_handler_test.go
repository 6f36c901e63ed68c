package util

import (
	"encoding/base64"
	"testing"
)

func TestValidateEmail(t *testing.T) {
	cases := []struct {
		email string
		ok    bool
	}{
		{"user@example.com", true},
		{"a.b+c@sub.domain.org", true},
		{"no-at-sign", false},
		{"user@domain", false},
		{"@example.com", false},
		{"", false},
	}
	for _, c := range cases {
		if got := ValidateEmail(c.email); got != c.ok {
			t.Fatalf("ValidateEmail(%q) = %v, want %v", c.email, got, c.ok)
		}
	}
}

func TestValidateNickname(t *testing.T) {
	cases := []struct {
		nickname string
		ok       bool
	}{
		{"alice", true},
		{"a", true},
		{"abcdefghij", true},
		{"abcdefghijk", false},
		{"has space", false},
		{"tab\there", false},
		{"", false},
	}
	for _, c := range cases {
		if got := ValidateNickname(c.nickname); got != c.ok {
			t.Fatalf("ValidateNickname(%q) = %v, want %v", c.nickname, got, c.ok)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		password string
		ok       bool
	}{
		{"Abc123!@", true},
		{"Xy1!Xy1!Xy1!Xy1!Xy1!", true},
		{"Ab1!567", false},                // 长度不足
		{"Xy1!Xy1!Xy1!Xy1!Xy1!x", false},  // 超长
		{"abc123!@", false},               // 无大写
		{"ABC123!@", false},               // 无小写
		{"Abcdef!@", false},               // 无数字
		{"Abc12345", false},               // 无特殊字符
		{"Abc 123!@", false},              // 含空格
	}
	for _, c := range cases {
		if got := ValidatePassword(c.password); got != c.ok {
			t.Fatalf("ValidatePassword(%q) = %v, want %v", c.password, got, c.ok)
		}
	}
}

func TestDecodePassword(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString([]byte("Abc123!@"))
	decoded, err := DecodePassword(encoded)
	if err != nil || decoded != "Abc123!@" {
		t.Fatalf("DecodePassword(%q) = %q, %v", encoded, decoded, err)
	}

	if _, err = DecodePassword("not base64 !!"); err == nil {
		t.Fatal("expected error for non-base64 input")
	}
	if _, err = DecodePassword("====="); err == nil {
		t.Fatal("expected error for malformed padding")
	}
}
