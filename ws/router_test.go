package ws

import (
	"errors"
	"testing"

	"github.com/muhwezim78/Nashiecom-sub000/entity"
)

type fakeOrders struct {
	owners map[uint]uint
}

func (f *fakeOrders) OwnerOf(orderID uint) (uint, error) {
	owner, ok := f.owners[orderID]
	if !ok {
		return 0, errors.New("not found")
	}
	return owner, nil
}

func TestJoinOrderChatAuthorization(t *testing.T) {
	orders := &fakeOrders{owners: map[uint]uint{42: 7}}

	tests := []struct {
		name     string
		identity Identity
		orderID  uint
		wantErr  bool
	}{
		{"owning customer", Identity{UserID: 7, Role: entity.RoleCustomer}, 42, false},
		{"other customer", Identity{UserID: 8, Role: entity.RoleCustomer}, 42, true},
		{"admin", Identity{UserID: 99, Role: entity.RoleAdmin}, 42, false},
		{"unknown order", Identity{UserID: 7, Role: entity.RoleCustomer}, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := NewRegistry()
			rt := NewRouter(reg, orders)
			reg.Register("conn", &fakeSender{})

			err := rt.JoinOrderChat("conn", tt.orderID, tt.identity)
			if (err != nil) != tt.wantErr {
				t.Fatalf("JoinOrderChat() error = %v, wantErr = %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrDenied) {
					t.Errorf("error = %v, want ErrDenied", err)
				}
				if got := reg.MembersOf(OrderRoom(tt.orderID)); len(got) != 0 {
					t.Errorf("denied join still added membership: %v", got)
				}
			} else if got := reg.MembersOf(OrderRoom(tt.orderID)); len(got) != 1 {
				t.Errorf("membership after allowed join = %v, want 1 member", got)
			}
		})
	}
}

func TestJoinAdminNotifications(t *testing.T) {
	reg := NewRegistry()
	rt := NewRouter(reg, &fakeOrders{})
	reg.Register("adm", &fakeSender{})
	reg.Register("cus", &fakeSender{})

	if err := rt.JoinAdminNotifications("adm", Identity{UserID: 1, Role: entity.RoleAdmin}); err != nil {
		t.Fatalf("admin join failed: %v", err)
	}
	if err := rt.JoinAdminNotifications("cus", Identity{UserID: 2, Role: entity.RoleCustomer}); !errors.Is(err, ErrDenied) {
		t.Fatalf("customer join = %v, want ErrDenied", err)
	}

	members := reg.MembersOf(AdminRoom)
	if len(members) != 1 || members[0] != "adm" {
		t.Fatalf("MembersOf(admin-broadcast) = %v, want [adm]", members)
	}
}

func TestJoinUserNotifications(t *testing.T) {
	reg := NewRegistry()
	rt := NewRouter(reg, &fakeOrders{})
	reg.Register("conn", &fakeSender{})

	rt.JoinUserNotifications("conn", 7)
	if got := reg.MembersOf(UserRoom(7)); len(got) != 1 {
		t.Fatalf("MembersOf(user:7) = %v, want 1 member", got)
	}
}
