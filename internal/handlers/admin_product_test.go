package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestParseMultipartProductRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	_ = writer.WriteField("name", " Sneaker ")
	_ = writer.WriteField("price", "149.99")
	_ = writer.WriteField("category", "Footwear")
	_ = writer.WriteField("featured", "true")
	_ = writer.WriteField("sizes", "8")
	_ = writer.WriteField("sizes", "9")
	_ = writer.Close()

	req := httptest.NewRequest("POST", "/api/admin/products", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = req

	parsed, err := parseMultipartProductRequest(c)
	if err != nil {
		t.Fatalf("parseMultipartProductRequest returned error: %v", err)
	}
	if parsed.Name != "Sneaker" {
		t.Fatalf("expected trimmed name, got %q", parsed.Name)
	}
	if !parsed.PriceSet || parsed.Price != 149.99 {
		t.Fatalf("expected price 149.99, got %+v", parsed)
	}
	if !parsed.FeaturedSet || !parsed.Featured {
		t.Fatalf("expected featured=true, got %+v", parsed)
	}
	if !reflect.DeepEqual(parsed.Sizes, []string{"8", "9"}) {
		t.Fatalf("expected sizes [8 9], got %v", parsed.Sizes)
	}
	if parsed.InStockSet {
		t.Fatal("expected inStock unset when field absent")
	}
}

func TestParseMultipartProductRequestRejectsBadPrice(t *testing.T) {
	gin.SetMode(gin.TestMode)
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	_ = writer.WriteField("price", "free")
	_ = writer.Close()

	req := httptest.NewRequest("POST", "/api/admin/products", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = req

	if _, err := parseMultipartProductRequest(c); err == nil {
		t.Fatal("expected error for non-numeric price")
	}
}

func TestNormalizeOptionValues(t *testing.T) {
	got := normalizeOptionValues([]string{" S ", "M", "", "M", "L"})
	want := []string{"S", "M", "L"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
