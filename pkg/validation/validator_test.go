package validation

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

type sampleRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

func bindSample(t *testing.T, payload string) error {
	t.Helper()
	gin.SetMode(gin.TestMode)
	Init()
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("POST", "/", bytes.NewBufferString(payload))
	c.Request.Header.Set("Content-Type", "application/json")
	var req sampleRequest
	return c.ShouldBindJSON(&req)
}

func TestToErrorListMessages(t *testing.T) {
	err := bindSample(t, `{"email":"not-an-email","password":"abc"}`)
	if err == nil {
		t.Fatal("expected validation error")
	}
	items := ToErrorList(err)

	got := map[string]bool{}
	for _, it := range items {
		got[it.Msg] = true
	}
	for _, want := range []string{
		"Name is required",
		"Please include a valid email",
		"Please enter a minimum of 6 characters",
	} {
		if !got[want] {
			t.Errorf("missing message %q in %v", want, items)
		}
	}
}

func TestToErrorListInvalidJSON(t *testing.T) {
	err := bindSample(t, `{"name":`)
	if err == nil {
		t.Fatal("expected decode error")
	}
	items := ToErrorList(err)
	if len(items) != 1 || items[0].Msg != "Invalid JSON payload" {
		t.Errorf("items = %+v", items)
	}
}

func TestToErrorListNil(t *testing.T) {
	if items := ToErrorList(nil); items != nil {
		t.Errorf("items = %+v, want nil", items)
	}
}

func TestLabelFallback(t *testing.T) {
	if got := label("fieldofstudy"); got != "Field of study" {
		t.Errorf("label(fieldofstudy) = %q", got)
	}
	if got := label("status"); got != "Status" {
		t.Errorf("label(status) = %q", got)
	}
}
