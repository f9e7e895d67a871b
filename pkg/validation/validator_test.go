package validation

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Gin's validator reads the "binding" tag.
type accountForm struct {
	Name     string `json:"name" binding:"required,personname"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required,bdphone"`
	Password string `json:"password" binding:"required,pwd"`
}

func engine(t *testing.T) *validator.Validate {
	t.Helper()
	Init()
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		t.Fatal("binding validator engine unavailable")
	}
	return v
}

func TestValidAccountPasses(t *testing.T) {
	v := engine(t)
	err := v.Struct(accountForm{
		Name:     "Alamgir",
		Email:    "alam@example.com",
		Phone:    "01712345678",
		Password: "secret12",
	})
	if err != nil {
		t.Fatalf("valid form rejected: %v", err)
	}
}

func TestBDPhoneRule(t *testing.T) {
	v := engine(t)
	valid := []string{"01712345678", "8801712345678", "+8801912345678", "01399999999"}
	invalid := []string{"01212345678", "0171234567", "017123456789", "12345", "+1-555-0100"}

	for _, p := range valid {
		if err := v.Var(p, "bdphone"); err != nil {
			t.Errorf("%q rejected: %v", p, err)
		}
	}
	for _, p := range invalid {
		if err := v.Var(p, "bdphone"); err == nil {
			t.Errorf("%q accepted", p)
		}
	}
}

func TestPasswordBounds(t *testing.T) {
	v := engine(t)
	if err := v.Var("abcd", "pwd"); err == nil {
		t.Error("4-char password accepted")
	}
	if err := v.Var("abcde", "pwd"); err != nil {
		t.Errorf("5-char password rejected: %v", err)
	}
	if err := v.Var("abcdefghijklmnopqrst", "pwd"); err != nil {
		t.Errorf("20-char password rejected: %v", err)
	}
	if err := v.Var("abcdefghijklmnopqrstu", "pwd"); err == nil {
		t.Error("21-char password accepted")
	}
}

func TestToDetailsUsesJSONFieldNames(t *testing.T) {
	v := engine(t)
	err := v.Struct(accountForm{Name: "Al", Email: "nope", Phone: "123", Password: "abc"})
	if err == nil {
		t.Fatal("expected validation errors")
	}
	details := ToDetails(err)
	for _, field := range []string{"name", "email", "phone", "password"} {
		if _, ok := details[field]; !ok {
			t.Errorf("missing detail for %q: %v", field, details)
		}
	}
}

func TestToDetailsNil(t *testing.T) {
	if got := ToDetails(nil); got != nil {
		t.Errorf("ToDetails(nil) = %v", got)
	}
}
