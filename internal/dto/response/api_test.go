package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/jrjohn/smart-waste-go/internal/domain/entity"
)

func TestOK(t *testing.T) {
	bin := map[string]string{"label": "B-1"}
	resp := OK(bin, "Bin created successfully")

	if !resp.Success || resp.Message != "Bin created successfully" || resp.Data == nil {
		t.Errorf("OK() = %+v", resp)
	}
	if resp.Timestamp.IsZero() || resp.Timestamp.Location() != time.UTC {
		t.Errorf("Timestamp = %v, want a UTC time", resp.Timestamp)
	}
}

func TestWithData(t *testing.T) {
	resp := WithData([]int{1, 2, 3})

	if !resp.Success || resp.Message != "" || len(resp.Data) != 3 {
		t.Errorf("WithData() = %+v", resp)
	}
}

func TestFailure(t *testing.T) {
	before := time.Now()
	resp := Failure[any]("Bin not found")

	if resp.Success || resp.Message != "Bin not found" || resp.Data != nil {
		t.Errorf("Failure() = %+v", resp)
	}
	if resp.Timestamp.Before(before.Add(-time.Second)) {
		t.Error("Failure() should set a current Timestamp")
	}
}

func TestInvalid(t *testing.T) {
	resp := Invalid[any]("Invalid request body", "EOF")

	if resp.Success || resp.Message != "Invalid request body" || resp.Errors != "EOF" {
		t.Errorf("Invalid() = %+v", resp)
	}
}

func TestEnvelope_OmitsEmptyData(t *testing.T) {
	raw, err := json.Marshal(Failure[any]("nope"))
	if err != nil {
		t.Fatal(err)
	}
	s := string(raw)
	if strings.Contains(s, `"data"`) || strings.Contains(s, `"errors"`) {
		t.Errorf("empty fields should be omitted: %s", s)
	}
	if !strings.Contains(s, `"success":false`) || !strings.Contains(s, `"timestamp"`) {
		t.Errorf("missing envelope fields: %s", s)
	}
}

func TestAccountResponses(t *testing.T) {
	tests := []struct {
		name string
		got  *AccountResponse
		role entity.Role
	}{
		{"admin", FromAdmin(&entity.Admin{ID: 1, Name: "A", Email: "a@b.com", Password: "hash", City: "Pune"}), entity.RoleAdmin},
		{"user", FromUser(&entity.User{ID: 2, Name: "U", Email: "u@b.com", Password: "hash"}), entity.RoleUser},
		{"driver", FromDriver(&entity.Driver{ID: 3, Name: "D", Email: "d@b.com", Password: "hash"}), entity.RoleDriver},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got.Role != tt.role {
				t.Errorf("Role = %v, want %v", tt.got.Role, tt.role)
			}
			raw, _ := json.Marshal(tt.got)
			if strings.Contains(string(raw), "hash") {
				t.Errorf("password leaked: %s", raw)
			}
			if !strings.Contains(string(raw), `"_id":`) {
				t.Errorf("missing _id: %s", raw)
			}
		})
	}
}

func TestSessionResponse_HidesToken(t *testing.T) {
	raw, _ := json.Marshal(SessionResponse{Account: &AccountResponse{ID: 1}, Token: "secret.jwt"})
	if strings.Contains(string(raw), "secret.jwt") {
		t.Errorf("token leaked: %s", raw)
	}
}

func BenchmarkOK(b *testing.B) {
	data := map[string]string{"label": "B-1"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		OK(data, "Bin updated successfully")
	}
}
