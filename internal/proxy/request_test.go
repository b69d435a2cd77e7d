package proxy

import (
	"bytes"
	"testing"
)

func TestParseRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		raw        string
		wantMethod Method
		wantTarget string
		wantErr    bool
	}{
		{
			name:       "connect",
			raw:        "CONNECT example.org:443 HTTP/1.1\r\n\r\n",
			wantMethod: MethodConnect,
			wantTarget: "example.org:443",
		},
		{
			name:       "get absolute url",
			raw:        "GET http://example.org:8080/path HTTP/1.1\r\nHost: example.org\r\n\r\n",
			wantMethod: MethodGet,
			wantTarget: "http://example.org:8080/path",
		},
		{
			name:       "post",
			raw:        "POST http://example.org/ HTTP/1.1\r\n\r\n",
			wantMethod: MethodPost,
			wantTarget: "http://example.org/",
		},
		{
			name:       "head",
			raw:        "HEAD http://example.org/ HTTP/1.1\r\n\r\n",
			wantMethod: MethodHead,
			wantTarget: "http://example.org/",
		},
		{
			name:       "two tokens only",
			raw:        "DELETE http://example.org/\r\n",
			wantMethod: MethodDelete,
			wantTarget: "http://example.org/",
		},
		{
			name:    "missing crlf",
			raw:     "GET http://example.org/ HTTP/1.1",
			wantErr: true,
		},
		{
			name:    "lf only",
			raw:     "GET http://example.org/ HTTP/1.1\n\n",
			wantErr: true,
		},
		{
			name:    "empty input",
			raw:     "",
			wantErr: true,
		},
		{
			name:    "empty line",
			raw:     "\r\n",
			wantErr: true,
		},
		{
			name:    "method only",
			raw:     "GET\r\n",
			wantErr: true,
		},
		{
			name:    "method with trailing space",
			raw:     "GET \r\n",
			wantErr: true,
		},
		{
			name:    "unknown method",
			raw:     "FOO / HTTP/1.1\r\n\r\n",
			wantErr: true,
		},
		{
			name:    "lowercase method rejected",
			raw:     "get http://example.org/ HTTP/1.1\r\n\r\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := []byte(tt.raw)
			req, err := ParseRequest(raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err=%v wantErr=%v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if req.Method != tt.wantMethod {
				t.Errorf("method=%q want %q", req.Method, tt.wantMethod)
			}
			if req.Target != tt.wantTarget {
				t.Errorf("target=%q want %q", req.Target, tt.wantTarget)
			}
			if !bytes.Equal(req.Raw, []byte(tt.raw)) {
				t.Errorf("raw bytes not preserved verbatim")
			}
		})
	}
}

func TestParseRequestDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	raw := []byte("CONNECT example.org:443 HTTP/1.1\r\n\r\n")
	orig := bytes.Clone(raw)

	first, err := ParseRequest(raw)
	if err != nil {
		t.Fatal(err)
	}
	second, err := ParseRequest(raw)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(raw, orig) {
		t.Fatal("input buffer was mutated")
	}
	if first.Method != second.Method || first.Target != second.Target {
		t.Fatalf("parse not idempotent: %+v vs %+v", first, second)
	}
}
