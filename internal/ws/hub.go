package ws

import (
	logger_lib "github.com/s21platform/logger-lib"
)

// Hub bundles the two connection registries with the routing components
// built on top of them. One hub per process, injected into the handlers
// that open sockets or push events; registries are never ambient globals.
type Hub struct {
	Notifications *NotificationRegistry
	Rooms         *ChatRegistry
	Dispatcher    *NotificationDispatcher
	Router        *FanoutRouter
}

func NewHub(members MemberProvider, logger logger_lib.LoggerInterface) *Hub {
	notifications := NewNotificationRegistry()
	rooms := NewChatRegistry()

	return &Hub{
		Notifications: notifications,
		Rooms:         rooms,
		Dispatcher:    NewNotificationDispatcher(notifications, logger),
		Router:        NewFanoutRouter(rooms, notifications, members, logger),
	}
}
