package progress

import (
	"log"
	"strconv"
)

// Ключи сохранения совпадают с веб-версией, чтобы старые сейвы читались.
const (
	KeyHighScore         = "highScore"
	KeyLastRunScore      = "currentScore"
	KeyTotalCurrency     = "totalPoints"
	KeyHealthUpgrade     = "healthUpgrade"
	KeyClickPowerUpgrade = "clickPowerUpgrade"
)

// Record - снимок всего сохранённого прогресса.
type Record struct {
	HighScore         int
	LastRunScore      int
	HasLastRunScore   bool // ключ забега ещё не зачислен магазином
	TotalCurrency     int
	HealthUpgrade     int
	ClickPowerUpgrade int
}

// Progress gives typed access to a Store. Numbers are kept as decimal
// strings; missing, malformed or negative values read as the default.
// Write failures are logged; callers that must not lose data check the
// returned error.
type Progress struct {
	store Store
}

func New(store Store) *Progress {
	if store == nil {
		store = NewMemoryStore()
	}
	return &Progress{store: store}
}

func (p *Progress) Store() Store {
	return p.store
}

// Int reads key as a non-negative integer.
func (p *Progress) Int(key string, def int) int {
	v, _ := p.lookup(key, def)
	return v
}

// lookup also reports whether the key held a usable value.
func (p *Progress) lookup(key string, def int) (int, bool) {
	raw, ok := p.store.Get(key)
	if !ok {
		return def, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		log.Printf("Progress: malformed value %q for %s, using %d", raw, key, def)
		return def, false
	}
	return n, true
}

// SetInt stores v as a decimal string. The error is logged and returned.
func (p *Progress) SetInt(key string, v int) error {
	if err := p.store.Set(key, strconv.Itoa(v)); err != nil {
		log.Printf("Progress: failed to save %s=%d: %v", key, v, err)
		return err
	}
	return nil
}

func (p *Progress) Delete(key string) {
	if err := p.store.Delete(key); err != nil {
		log.Printf("Progress: failed to delete %s: %v", key, err)
	}
}

// Load reads the whole record.
func (p *Progress) Load() Record {
	last, hasLast := p.lookup(KeyLastRunScore, 0)
	return Record{
		HighScore:         p.Int(KeyHighScore, 0),
		LastRunScore:      last,
		HasLastRunScore:   hasLast,
		TotalCurrency:     p.Int(KeyTotalCurrency, 0),
		HealthUpgrade:     p.Int(KeyHealthUpgrade, 0),
		ClickPowerUpgrade: p.Int(KeyClickPowerUpgrade, 0),
	}
}

func (p *Progress) HighScore() int {
	return p.Int(KeyHighScore, 0)
}

// RaiseHighScore stores score if it beats the saved best and reports
// whether it did. The saved value never decreases.
func (p *Progress) RaiseHighScore(score int) bool {
	if score <= p.HighScore() {
		return false
	}
	// рекорд засчитывается и при ошибке записи, она уже в логе
	_ = p.SetInt(KeyHighScore, score)
	return true
}

// SaveRunScore records the score of a finished run for the shop to collect.
func (p *Progress) SaveRunScore(score int) error {
	return p.SetInt(KeyLastRunScore, score)
}

// CollectRunScore adds a pending run score to the currency and removes
// the run score key, so the same run is never counted twice. The key is
// removed only after the new total is saved; if that write fails the run
// stays pending and the saved total is returned unchanged.
// Returns the collected amount and the new total.
func (p *Progress) CollectRunScore() (collected, total int) {
	total = p.Int(KeyTotalCurrency, 0)
	if _, present := p.store.Get(KeyLastRunScore); !present {
		return 0, total
	}
	last, ok := p.lookup(KeyLastRunScore, 0)
	if !ok {
		// битое значение удаляем, иначе оно будет попадаться при каждом входе
		p.Delete(KeyLastRunScore)
		return 0, total
	}
	if err := p.SetInt(KeyTotalCurrency, total+last); err != nil {
		return 0, total
	}
	p.Delete(KeyLastRunScore)
	return last, total + last
}
