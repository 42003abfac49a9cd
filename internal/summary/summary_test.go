package summary

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/Harshal279/chatbot/internal/questions"
	"github.com/Harshal279/chatbot/internal/testutil"
)

var fixedNow = time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)

func TestLabel(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"company_name", "Company Name"},
		{"spoc", "Spoc"},
		{"whatsapp_integration", "Whatsapp Integration"},
		{"pipeline_count", "Pipeline Count"},
		{"tags", "Tags"},
		{"e-mail_ID", "E-Mail Id"},
	}
	for _, tt := range tests {
		if got := Label(tt.key); got != tt.want {
			t.Errorf("Label(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestDocumentScenario(t *testing.T) {
	reg := testutil.SmallRegistry(t)
	answers := map[string]questions.Answer{
		"name":  questions.Text("Acme"),
		"color": questions.Text("Blue"),
		"tags":  questions.Multi([]string{"A", "C"}),
	}

	doc, err := NewDocument(reg, answers, fixedNow)
	if err != nil {
		t.Fatalf("NewDocument: %v", err)
	}

	want := []string{"Name: Acme", "Color: Blue", "Tags: A, C"}
	if diff := cmp.Diff(want, doc.Lines()); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
	if doc.Title != Title {
		t.Errorf("title = %q", doc.Title)
	}
	if doc.Date() != "2026-10-14" {
		t.Errorf("date = %q", doc.Date())
	}
	if doc.Company != FallbackCompany {
		t.Errorf("company = %q, want fallback", doc.Company)
	}
}

func TestDocumentRequiresAllAnswers(t *testing.T) {
	reg := testutil.SmallRegistry(t)
	_, err := NewDocument(reg, map[string]questions.Answer{"name": questions.Text("Acme")}, fixedNow)
	if !errors.Is(err, ErrIncomplete) {
		t.Errorf("err = %v, want ErrIncomplete", err)
	}
}

func TestDocumentFollowsRegistryOrder(t *testing.T) {
	reg := questions.Default()
	doc, err := NewDocument(reg, testutil.ProposalAnswers(), fixedNow)
	if err != nil {
		t.Fatal(err)
	}

	if len(doc.Items) != reg.Len() {
		t.Fatalf("items = %d, want %d", len(doc.Items), reg.Len())
	}
	for i, q := range reg.All() {
		if doc.Items[i].Key != q.Key {
			t.Errorf("item %d = %s, want %s", i, doc.Items[i].Key, q.Key)
		}
	}
	if doc.Lines()[0] != "Company Name: Acme Corp" {
		t.Errorf("first line = %q", doc.Lines()[0])
	}
	if doc.Company != "Acme Corp" {
		t.Errorf("company = %q", doc.Company)
	}
	if len(doc.Phases) != questions.NumPhases {
		t.Errorf("phases = %d, want %d", len(doc.Phases), questions.NumPhases)
	}
}

func TestPhaseView(t *testing.T) {
	reg := questions.Default()
	answers := map[string]questions.Answer{
		"reports":        questions.Multi([]string{"EOD summary"}),
		"company_name":   questions.Text("Acme"),
		"pain_points":    questions.Text("Lead leakage"),
		"contact_person": questions.Text("Ravi"),
	}

	groups := PhaseView(reg, answers)

	if len(groups) != 2 {
		t.Fatalf("groups = %d, want 2 (phases without answers omitted)", len(groups))
	}
	if groups[0].Phase != 1 || groups[0].Name != "Client & Project Basics" {
		t.Errorf("group 0 = %d %q", groups[0].Phase, groups[0].Name)
	}
	var keys []string
	for _, it := range groups[0].Items {
		keys = append(keys, it.Key)
	}
	if diff := cmp.Diff([]string{"company_name", "contact_person", "pain_points"}, keys); diff != "" {
		t.Errorf("phase 1 order mismatch (-want +got):\n%s", diff)
	}
	if groups[1].Phase != 5 || groups[1].Items[0].Line() != "Reports: EOD summary" {
		t.Errorf("group 1 = %+v", groups[1])
	}
}

func TestPhaseViewEmpty(t *testing.T) {
	if groups := PhaseView(questions.Default(), nil); len(groups) != 0 {
		t.Errorf("PhaseView(nil) = %v", groups)
	}
}

func TestFilename(t *testing.T) {
	tests := []struct {
		name    string
		answers map[string]questions.Answer
		ext     string
		want    string
	}{
		{
			name:    "company present",
			answers: map[string]questions.Answer{questions.CompanyKey: questions.Text("Acme")},
			ext:     "txt",
			want:    "CRM_Proposal_Acme_20261014.txt",
		},
		{
			name: "company missing",
			ext:  "txt",
			want: "CRM_Proposal_Client_20261014.txt",
		},
		{
			name:    "company blank",
			answers: map[string]questions.Answer{questions.CompanyKey: questions.Text("   ")},
			ext:     "md",
			want:    "CRM_Proposal_Client_20261014.md",
		},
		{
			name:    "unsafe characters",
			answers: map[string]questions.Answer{questions.CompanyKey: questions.Text("A/B\\C: Ltd")},
			ext:     "json",
			want:    "CRM_Proposal_A_B_C_ Ltd_20261014.json",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Filename(tt.answers, fixedNow, tt.ext); got != tt.want {
				t.Errorf("Filename() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLineFoldsMultilineText(t *testing.T) {
	it := Item{Label: "Training", Value: questions.Text("Sales: 4h\n\nAdmin: 2h\r\n")}
	if got := it.Line(); got != "Training: Sales: 4h / Admin: 2h" {
		t.Errorf("Line() = %q", got)
	}
}

func TestDocumentFilename(t *testing.T) {
	doc, err := NewDocument(questions.Default(), testutil.ProposalAnswers(), fixedNow)
	if err != nil {
		t.Fatal(err)
	}
	if got := doc.Filename("txt"); got != "CRM_Proposal_Acme Corp_20261014.txt" {
		t.Errorf("Filename() = %q", got)
	}
}
