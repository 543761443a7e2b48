package kafka

// Config содержит конфигурацию подключения сервиса к Kafka.
// Дефолты задаёт сервис в зависимости от окружения (local/docker),
// переменные окружения перекрывают их через LoadEnv
type Config struct {
	// Brokers — список брокеров Kafka.
	// Несколько брокеров указываются через запятую: "broker1:9092,broker2:9092"
	Brokers []string `env:"KAFKA_BROKERS" envSeparator:","`
	// Topic — доменный топик сервиса (например, order.created)
	Topic string `env:"KAFKA_TOPIC"`
	// GroupID — consumer group (пустой для сервисов, которые только публикуют)
	GroupID string `env:"KAFKA_GROUP_ID"`
}
