package event

const (
	EnemySpawned      EventType = "EnemySpawned"
	EnemyKilled       EventType = "EnemyKilled"      // Враг убит кликом
	EnemyReachedZone  EventType = "EnemyReachedZone" // Враг дошёл до центра
	HighScoreChanged  EventType = "HighScoreChanged" // Новый рекорд
	DifficultyRaised  EventType = "DifficultyRaised"
	GameOver          EventType = "GameOver"    // Здоровье закончилось
	RunFinished       EventType = "RunFinished" // Пауза после game over прошла
	UpgradePurchased  EventType = "UpgradePurchased"
	RunScoreCollected EventType = "RunScoreCollected" // Очки забега зачислены в магазине
)
