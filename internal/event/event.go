// internal/event/event.go
package event

// EventType - тип события
type EventType string

// Event - структура события
type Event struct {
	Type EventType
	Data interface{} // Данные события, если нужны
}

// ScoreData - данные событий EnemyKilled, HighScoreChanged и GameOver
type ScoreData struct {
	RunID     string
	Score     int
	HighScore int
	Award     int // очки за последнего убитого врага
}

// PurchaseData - данные события UpgradePurchased
type PurchaseData struct {
	Upgrade string
	Level   int
	Cost    int
	Balance int
}

// CollectData - данные события RunScoreCollected
type CollectData struct {
	Collected int
	Total     int
}

// Listener - интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher - диспетчер событий
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher - создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe - подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Unsubscribe - отписка от события
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	listeners, exists := d.listeners[eventType]
	if !exists {
		return
	}
	for i, l := range listeners {
		if l == listener {
			rest := make([]Listener, 0, len(listeners)-1)
			rest = append(rest, listeners[:i]...)
			d.listeners[eventType] = append(rest, listeners[i+1:]...)
			return
		}
	}
}

// UnsubscribeAll - отписка слушателя от всех типов событий
func (d *Dispatcher) UnsubscribeAll(listener Listener) {
	for eventType := range d.listeners {
		d.Unsubscribe(eventType, listener)
	}
}

// Dispatch - отправка события всем подписчикам.
// Подписчики, добавленные во время рассылки, получат только следующие события.
func (d *Dispatcher) Dispatch(event Event) {
	listeners, exists := d.listeners[event.Type]
	if !exists {
		return
	}
	snapshot := append([]Listener(nil), listeners...)
	for _, listener := range snapshot {
		listener.OnEvent(event)
	}
}
