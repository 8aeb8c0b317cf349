package consumer

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/tripvista/travel-api/internal/models"
	"github.com/tripvista/travel-api/internal/notifier"
)

// BookingConsumer turns booking.created messages into confirmation mails.
type BookingConsumer struct {
	dispatcher notifier.Dispatcher
}

func NewBookingConsumer(dispatcher notifier.Dispatcher) *BookingConsumer {
	return &BookingConsumer{dispatcher: dispatcher}
}

// Start listens for messages until the channel closes.
func (bc *BookingConsumer) Start(msgs <-chan amqp.Delivery) {
	go func() {
		for msg := range msgs {
			bc.handleMessage(msg)
		}
		log.Println("[BookingConsumer] channel closed, stopping consumer")
	}()
}

func (bc *BookingConsumer) handleMessage(msg amqp.Delivery) {
	var booking models.Booking
	if err := json.Unmarshal(msg.Body, &booking); err != nil {
		log.Printf("[BookingConsumer] failed to unmarshal: %v", err)
		msg.Nack(false, false)
		return
	}

	// At-most-once: a failed send is logged and the message acked anyway.
	// Requeueing would keep retrying an email nobody is waiting on.
	if err := bc.dispatcher.SendBookingConfirmation(&booking); err != nil {
		log.Printf("[BookingConsumer] failed to send confirmation for %s: %v", booking.ID, err)
	} else {
		log.Printf("[BookingConsumer] sent confirmation for booking %s", booking.ID)
	}
	msg.Ack(false)
}
