package initializers

import (
	"database/sql"
	"log"
	"os"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	_ "github.com/lib/pq"
)

var DB *goqu.Database

const (
	connectAttempts = 10
	connectInterval = 500 * time.Millisecond
)

// ConnectDB establishes the process-wide store connection. The wait for a
// reachable database is bounded; once the attempt budget is exhausted the
// process exits rather than serving requests against an absent store.
func ConnectDB() {
	dsn := os.Getenv("DB_URL")

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatal(err)
	}

	for attempt := 1; ; attempt++ {
		err = db.Ping()
		if err == nil {
			break
		}
		if attempt == connectAttempts {
			log.Fatalf("database unreachable after %d attempts: %v", connectAttempts, err)
		}
		log.Printf("database not ready (attempt %d/%d): %v", attempt, connectAttempts, err)
		time.Sleep(connectInterval)
	}

	DB = goqu.New("postgres", db)
}
