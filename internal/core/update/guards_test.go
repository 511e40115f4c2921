package update

import "testing"

func TestCanMutateUpdatePostByAuthor(t *testing.T) {
	result := CanMutateUpdate("UPD-001", TypePost, "USER-001", "USER-001")
	if !result.Allowed {
		t.Fatalf("expected author edit allowed: %s", result.Reason)
	}
	if result.Error() != nil {
		t.Fatal("expected nil error for allowed guard")
	}
}

func TestCanMutateUpdatePostByOtherUser(t *testing.T) {
	result := CanMutateUpdate("UPD-001", TypePost, "USER-001", "USER-002")
	if result.Allowed {
		t.Fatal("expected edit by non-author rejected")
	}
}

func TestCanMutateUpdateSystemRecords(t *testing.T) {
	systemTypes := []Type{
		TypePhaseCreated, TypePhaseDeleted, TypePhaseRestored,
		TypePhaseAssigned, TypeItemCompleted, TypePhaseCompleted,
	}
	for _, ut := range systemTypes {
		result := CanMutateUpdate("UPD-001", ut, "USER-001", "USER-001")
		if result.Allowed {
			t.Errorf("expected %s record immutable even for its author", ut)
		}
	}
}

func TestTypeValid(t *testing.T) {
	if !TypePost.Valid() || !TypePhaseCompleted.Valid() {
		t.Fatal("expected known types valid")
	}
	if Type("comment").Valid() {
		t.Fatal("expected unknown type invalid")
	}
}
