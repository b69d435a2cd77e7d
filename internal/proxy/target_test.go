package proxy

import (
	"testing"
)

func TestResolveTarget(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		method  Method
		target  string
		want    Target
		wantErr bool
	}{
		{
			name:   "url explicit port",
			method: MethodGet,
			target: "http://example.org:8080/path",
			want:   Target{Host: "example.org", Port: 8080},
		},
		{
			name:   "http default port",
			method: MethodGet,
			target: "http://example.org/",
			want:   Target{Host: "example.org", Port: 80},
		},
		{
			name:   "https default port",
			method: MethodPost,
			target: "https://example.org/api",
			want:   Target{Host: "example.org", Port: 443},
		},
		{
			name:   "ftp default port",
			method: MethodGet,
			target: "ftp://example.org/file",
			want:   Target{Host: "example.org", Port: 21},
		},
		{
			name:   "wss default port",
			method: MethodGet,
			target: "wss://example.org/ws",
			want:   Target{Host: "example.org", Port: 443},
		},
		{
			name:    "scheme without default port",
			method:  MethodGet,
			target:  "gopher://example.org/",
			wantErr: true,
		},
		{
			name:    "relative target",
			method:  MethodGet,
			target:  "/path",
			wantErr: true,
		},
		{
			name:    "url missing host",
			method:  MethodGet,
			target:  "http:///path",
			wantErr: true,
		},
		{
			name:    "url port out of range",
			method:  MethodGet,
			target:  "http://example.org:70000/",
			wantErr: true,
		},
		{
			name:   "connect host and port",
			method: MethodConnect,
			target: "example.org:443",
			want:   Target{Host: "example.org", Port: 443},
		},
		{
			name:   "connect high port",
			method: MethodConnect,
			target: "example.org:65535",
			want:   Target{Host: "example.org", Port: 65535},
		},
		{
			name:    "connect missing colon",
			method:  MethodConnect,
			target:  "example.org",
			wantErr: true,
		},
		{
			name:    "connect missing port",
			method:  MethodConnect,
			target:  "example.org:",
			wantErr: true,
		},
		{
			name:    "connect missing host",
			method:  MethodConnect,
			target:  ":443",
			wantErr: true,
		},
		{
			name:    "connect port zero",
			method:  MethodConnect,
			target:  "example.org:0",
			wantErr: true,
		},
		{
			name:    "connect port not numeric",
			method:  MethodConnect,
			target:  "example.org:https",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveTarget(&Request{Method: tt.method, Target: tt.target})
			if (err != nil) != tt.wantErr {
				t.Fatalf("err=%v wantErr=%v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got != tt.want {
				t.Fatalf("got %+v want %+v", got, tt.want)
			}
		})
	}
}

func TestTargetAddr(t *testing.T) {
	t.Parallel()

	addr := Target{Host: "example.org", Port: 8080}.Addr()
	if addr != "example.org:8080" {
		t.Fatalf("got %q", addr)
	}
}
