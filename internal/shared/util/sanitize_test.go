package util

import "testing"

func TestSanitizeFileName(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"resume.pdf", "resume.pdf", false},
		{" resume.pdf ", "resume.pdf", false},
		{"dir/resume.pdf", "dir_resume.pdf", false},
		{"dir\\resume.pdf", "dir_resume.pdf", false},
		{"../etc/passwd", "", true},
		{"", "", true},
		{"   ", "", true},
	}
	for _, tc := range cases {
		got, err := SanitizeFileName(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("SanitizeFileName(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("SanitizeFileName(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("SanitizeFileName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFileExt(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"resume.PDF", "pdf"},
		{"resume.txt", "txt"},
		{"archive.tar.gz", "gz"},
		{"noext", ""},
	}
	for _, tc := range cases {
		if got := FileExt(tc.in); got != tc.want {
			t.Fatalf("FileExt(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
