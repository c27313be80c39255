package request

import "testing"

func TestCreateServiceRequestRequest_ToDraft(t *testing.T) {
	req := CreateServiceRequestRequest{
		ExtinguisherType:      "ABC",
		ExtinguisherCondition: "DISCHARGED",
		ScheduledDate:         "2026-09-02",
		TimeSlot:              "MORNING",
		Address:               "Calle 10 #20-30",
		Phone:                 "3001234567",
		Notes:                 "gate code 4321",
	}

	draft := req.ToDraft()
	if draft.ExtinguisherType != req.ExtinguisherType ||
		draft.ExtinguisherCondition != req.ExtinguisherCondition ||
		draft.ScheduledDate != req.ScheduledDate ||
		draft.TimeSlot != req.TimeSlot ||
		draft.Address != req.Address ||
		draft.Phone != req.Phone ||
		draft.Notes != req.Notes {
		t.Fatalf("draft does not mirror payload: %+v", draft)
	}
}
