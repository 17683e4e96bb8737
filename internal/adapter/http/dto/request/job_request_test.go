package request

import (
	"testing"
)

func TestJobUpdateRequest_ToInputScheduleSemantics(t *testing.T) {
	r := JobUpdateRequest{}
	if in := r.ToInput(); in.SetSchedule {
		t.Fatalf("nil scheduledDay must not touch the schedule")
	}

	empty := ""
	r2 := JobUpdateRequest{ScheduledDay: &empty}
	in := r2.ToInput()
	if !in.SetSchedule || in.ScheduledDay != "" {
		t.Fatalf("explicit empty day must request a clear, got %+v", in)
	}

	day := "2026-09-14"
	r3 := JobUpdateRequest{ScheduledDay: &day, TimeBlock: "8:00 AM - 10:00 AM"}
	in = r3.ToInput()
	if !in.SetSchedule || in.ScheduledDay != day || in.TimeBlock != "8:00 AM - 10:00 AM" {
		t.Fatalf("unexpected input: %+v", in)
	}
}

func TestAddressRequest_ToAddressZipFallback(t *testing.T) {
	a := AddressRequest{Zip: "30301"}
	if got := a.ToAddress().PostalCode; got != "30301" {
		t.Fatalf("expected zip fallback, got %q", got)
	}

	a2 := AddressRequest{PostalCode: "94110", Zip: "30301"}
	if got := a2.ToAddress().PostalCode; got != "94110" {
		t.Fatalf("postalCode must win over zip, got %q", got)
	}
}
