package urlparse

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want *Descriptor
	}{
		{
			name: "dev url with path suffix and messy ids",
			url:  "app.us-1.dev.kognitos.com/organizations/Acme Corp/workspaces/My WS/apps",
			want: &Descriptor{
				Env:         EnvDev,
				OrgID:       "acme-corp",
				WorkspaceID: "my-ws",
				Namespace:   "org-acme-corp-ws-my-ws",
			},
		},
		{
			name: "stg url with explicit scheme",
			url:  "https://app.us-1.stg.kognitos.com/organizations/acme/workspaces/main",
			want: &Descriptor{
				Env:         EnvStg,
				OrgID:       "acme",
				WorkspaceID: "main",
				Namespace:   "org-acme-ws-main",
			},
		},
		{
			name: "prod url has no env segment",
			url:  "app.us-1.kognitos.com/organizations/acme/workspaces/main",
			want: &Descriptor{
				Env:         EnvProd,
				OrgID:       "acme",
				WorkspaceID: "main",
				Namespace:   "org-acme-ws-main",
			},
		},
		{
			name: "localhost with port",
			url:  "http://localhost:3000/organizations/acme/workspaces/main",
			want: &Descriptor{
				Env:         EnvLocal,
				OrgID:       "acme",
				WorkspaceID: "main",
				Namespace:   "org-acme-ws-main",
			},
		},
		{
			name: "loopback literal",
			url:  "127.0.0.1:3000/organizations/acme/workspaces/main",
			want: &Descriptor{
				Env:         EnvLocal,
				OrgID:       "acme",
				WorkspaceID: "main",
				Namespace:   "org-acme-ws-main",
			},
		},
		{
			name: "unknown host",
			url:  "example.com/organizations/acme/workspaces/main",
			want: nil,
		},
		{
			name: "missing workspaces segment",
			url:  "app.us-1.dev.kognitos.com/organizations/acme",
			want: nil,
		},
		{
			name: "missing path entirely",
			url:  "app.us-1.dev.kognitos.com",
			want: nil,
		},
		{
			name: "empty input",
			url:  "",
			want: nil,
		},
		{
			name: "malformed url is swallowed",
			url:  "http://[::1/organizations/a/workspaces/b",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.url)
			if tt.want == nil {
				if got != nil {
					t.Fatalf("Parse(%q) = %+v, want nil", tt.url, got)
				}
				return
			}
			if got == nil {
				t.Fatalf("Parse(%q) = nil, want %+v", tt.url, tt.want)
			}
			if *got != *tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.url, got, tt.want)
			}
		})
	}
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Acme Corp", "acme-corp"},
		{"My WS", "my-ws"},
		{"already-clean", "already-clean"},
		{"--lots---of----hyphens--", "lots-of-hyphens"},
		{"UPPER_case.mixed", "upper-case-mixed"},
		{"***", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := SanitizeName(tt.in); got != tt.want {
			t.Errorf("SanitizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSanitizeNameIdempotent(t *testing.T) {
	inputs := []string{"Acme Corp", "a--b", "-x-", "Hello, World!", "org-acme-ws-main"}
	for _, in := range inputs {
		once := SanitizeName(in)
		twice := SanitizeName(once)
		if once != twice {
			t.Errorf("SanitizeName not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
