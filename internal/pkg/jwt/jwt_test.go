package jwt

import (
	"context"
	"testing"
	"time"
)

func TestGenerateAccessToken(t *testing.T) {
	service := NewJWTService("test-secret-key", "1h")

	employeeID := "emp-1"
	companyID := "company-1"
	tokenString, expiresAt, err := service.GenerateAccessToken("user-1", &employeeID, &companyID, "employee")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	if tokenString == "" {
		t.Fatal("expected a token string")
	}
	if expiresAt <= time.Now().Unix() {
		t.Errorf("expiresAt %d is not in the future", expiresAt)
	}

	token, err := service.JWTAuth().Decode(tokenString)
	if err != nil {
		t.Fatalf("decoding token: %v", err)
	}
	claims, err := token.AsMap(context.Background())
	if err != nil {
		t.Fatalf("reading claims: %v", err)
	}
	if claims["company_id"] != companyID {
		t.Errorf("company_id = %v, want %s", claims["company_id"], companyID)
	}
	if claims["employee_id"] != employeeID {
		t.Errorf("employee_id = %v, want %s", claims["employee_id"], employeeID)
	}
	if claims["type"] != "access" {
		t.Errorf("type = %v, want access", claims["type"])
	}
}

func TestGenerateAccessTokenInvalidExpiration(t *testing.T) {
	service := NewJWTService("test-secret-key", "not-a-duration")

	if _, _, err := service.GenerateAccessToken("user-1", nil, nil, "employee"); err == nil {
		t.Fatal("expected an error for an invalid expiration duration")
	}
}
