package ws

import "fmt"

// RoomKey names a logical room. Rooms are ephemeral: they exist only as
// the set of currently joined connections.
type RoomKey string

// AdminRoom is the shared broadcast channel for admin-relevant events.
const AdminRoom RoomKey = "admin-broadcast"

func OrderRoom(orderID uint) RoomKey {
	return RoomKey(fmt.Sprintf("order:%d", orderID))
}

func UserRoom(userID uint) RoomKey {
	return RoomKey(fmt.Sprintf("user:%d", userID))
}
