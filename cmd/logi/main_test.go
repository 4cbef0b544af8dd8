package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Aniny21/logi"
)

func TestRun(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"parse", []string{"parse", "A(B", "+", "C)"}, "A * ( B + C )\n"},
		{"parse object", []string{"parse", "A(B+C)", "-object"}, "And(A, Or(B, C))\n"},
		{"parse tex", []string{"parse", "-tex", "~A"}, "\\overline{A}\n"},
		{"table", []string{"table", "A * B"}, "A B | result\n0 0 | 0\n0 1 | 0\n1 0 | 0\n1 1 | 1\n"},
		{
			"minterms",
			[]string{"minimize", "-mt", "4,8,10,11,12,15", "-dc", "9,14"},
			"AB' + AC + BC'D'\nAC + AD' + BC'D'\n",
		},
		{"minterms verified", []string{"minimize", "-verify", "-mt", "1,2"}, "A'B + AB'\n"},
		{"minterms width", []string{"minimize", "-mt", "1", "-width", "3"}, "A'B'C\n"},
		{"expression", []string{"minimize", "A ^ B"}, "~A * B + A * ~B\n"},
		{"expression strings", []string{"minimize", "-strings", "-verify", "A ^ B"}, "A'B + AB'\n"},
		{"contradiction", []string{"minimize", "A * ~A"}, "0\n"},
		{"table count", []string{"table", "-count", "(A + B) * (C + D)"}, "9\n"},
		{"keyword letters", []string{"minimize", "-verify", "T*R*U*E"}, "T * R * U * E\n"},
		{"keyword letters strings", []string{"minimize", "-strings", "-verify", "O*R"}, "OR\n"},
		{"keyword letters negated", []string{"minimize", "-verify", "N * O * ~T"}, "N * O * ~T\n"},
		{"version", []string{"version"}, logi.Version() + "\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(tc.args, &stdout, &stderr); code != 0 {
				t.Fatalf("exit %d: %s", code, stderr.String())
			}
			if diff := cmp.Diff(tc.want, stdout.String()); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRunTiming(t *testing.T) {
	var stdout, stderr bytes.Buffer
	args := []string{"timing", "-signal", "A=0,0,1,1", "-signal", "B=0,1,0,1", "A * B"}
	if code := run(args, &stdout, &stderr); code != 0 {
		t.Fatalf("exit %d: %s", code, stderr.String())
	}
	lines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d lines, want 6:\n%s", len(lines), stdout.String())
	}
	if lines[0] != "Time |  @  |  B  |  A  |" {
		t.Errorf("header: got %q", lines[0])
	}
}

func TestRunErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		code int
	}{
		{"no command", nil, 2},
		{"unknown command", []string{"build"}, 2},
		{"missing expression", []string{"parse"}, 2},
		{"unknown flag", []string{"parse", "-nope", "A"}, 2},
		{"exclusive renders", []string{"parse", "-tex", "-object", "A"}, 2},
		{"syntax", []string{"parse", "A +"}, 1},
		{"both inputs", []string{"minimize", "-mt", "1", "A"}, 2},
		{"bad minterm", []string{"minimize", "-mt", "1,x"}, 2},
		{"overlap", []string{"minimize", "-mt", "1,2", "-dc", "2"}, 1},
		{"missing signal", []string{"timing", "-signal", "A=0,1", "A * B"}, 2},
		{"bad sample", []string{"timing", "-signal", "A=0,2", "A"}, 2},
		{"short signal", []string{"timing", "-signal", "A=0,1", "-signal", "B=1", "A * B"}, 1},
		{"missing config", []string{"parse", "-config", "/nonexistent/tokens.toml", "A"}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(tc.args, &stdout, &stderr); code != tc.code {
				t.Errorf("got exit %d, want %d (stderr %q)", code, tc.code, stderr.String())
			}
			if tc.code == 1 && !strings.HasPrefix(stderr.String(), "error:") {
				t.Errorf("stderr: got %q", stderr.String())
			}
		})
	}
}
