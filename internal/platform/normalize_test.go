package platform

import "testing"

func TestNormalizeArch(t *testing.T) {
	tests := []struct {
		name    string
		arch    string
		want    string
		wantErr bool
	}{
		{"amd64", "amd64", "amd64", false},
		{"x86_64_alias", "x86_64", "amd64", false},
		{"arm64", "arm64", "arm64", false},
		{"aarch64_alias", "aarch64", "arm64", false},
		{"386_unsupported", "386", "", true},
		{"arm_unsupported", "arm", "", true},
		{"riscv64_unsupported", "riscv64", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeArch(tt.arch)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q", tt.arch)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("normalizeArch(%q) = %q, want %q", tt.arch, got, tt.want)
			}
		})
	}
}

func TestMapFamily(t *testing.T) {
	tests := []struct {
		family string
		want   string
	}{
		{"debian", FamilyDebian},
		{"Ubuntu", FamilyDebian},
		{"rhel", FamilyRHEL},
		{"  fedora  ", FamilyFedora},
		{"arch", FamilyArch},
		{"alpine", FamilyAlpine},
		{"slackware", FamilyUnknown},
		{"", FamilyUnknown},
	}

	for _, tt := range tests {
		if got := mapFamily(tt.family); got != tt.want {
			t.Errorf("mapFamily(%q) = %q, want %q", tt.family, got, tt.want)
		}
	}
}
