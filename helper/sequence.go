package helper

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jos3lo89/ice-pos-server/utils"
	"gorm.io/gorm"
)

// NextNumber generates the next document number for a prefix (ORD-001,
// ORD-002, ...). It must run inside the same transaction as the insert of
// the document it numbers: the read of the last number and the write race
// otherwise. Numbers may skip under contention, they never repeat — the
// unique index on the number column backstops the generator.
func NextNumber(tx *gorm.DB, tableName, column, prefix string) (string, error) {
	var numbers []string
	err := tx.Table(tableName).
		Where(column+" LIKE ?", prefix+"%").
		Order("created_at desc").
		Limit(1).
		Pluck(column, &numbers).Error
	if err != nil {
		return "", err
	}

	if len(numbers) == 0 {
		return prefix + "001", nil
	}

	suffix := strings.TrimPrefix(numbers[0], prefix)
	current, err := strconv.Atoi(strings.TrimSpace(suffix))
	if err != nil {
		// Never default here: inventing a number risks a duplicate.
		return "", utils.FormatError(
			fmt.Sprintf("El último número %q tiene un formato inválido", numbers[0]))
	}

	return fmt.Sprintf("%s%03d", prefix, current+1), nil
}
