package reservations

import "testing"

func TestReservationDraft_StoresNormalizedPhone(t *testing.T) {
	req := checkoutRequest{Name: "Jane Doe", Tickets: 2, Phone: "0722123456"}

	draft := reservationDraft(req, "lw14", 2000, "INV-30")
	if draft.Phone != "+254722123456" {
		t.Errorf("expected the stored phone in +254 form, got %q", draft.Phone)
	}
	if draft.EventID != "lw14" || draft.Name != "Jane Doe" || draft.Tickets != 2 {
		t.Errorf("draft lost request fields: %+v", draft)
	}
	if draft.Amount != 2000 || draft.ExternalReference != "INV-30" {
		t.Errorf("draft lost checkout fields: %+v", draft)
	}
}

func TestReservationDraft_PrefixedPhonePassesThrough(t *testing.T) {
	req := checkoutRequest{Name: "Jane Doe", Tickets: 1, Phone: "+254733000111"}

	draft := reservationDraft(req, "lw14", 1000, "INV-31")
	if draft.Phone != "+254733000111" {
		t.Errorf("expected the prefixed phone stored unchanged, got %q", draft.Phone)
	}
}
