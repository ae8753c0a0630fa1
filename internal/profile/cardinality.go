package profile

// CardinalityClass 列基数分级
type CardinalityClass string

const (
	CardinalityUnique     CardinalityClass = "unique"
	CardinalityNearUnique CardinalityClass = "near_unique"
	CardinalityHigh       CardinalityClass = "high"
	CardinalityLow        CardinalityClass = "low"
	CardinalityEnumLike   CardinalityClass = "enum_like"
)

// ClassifyCardinality 根据非空唯一值数与总行数分级。
// 唯一值占比接近 1 视为键列，唯一值很少视为枚举/码值列。
func ClassifyCardinality(distinctCount, totalRows int64) CardinalityClass {
	if totalRows == 0 || distinctCount == 0 {
		return CardinalityLow
	}
	if distinctCount == totalRows {
		return CardinalityUnique
	}

	ratio := float64(distinctCount) / float64(totalRows)
	switch {
	case ratio >= 0.95:
		return CardinalityNearUnique
	case distinctCount <= 20:
		return CardinalityEnumLike
	case ratio >= 0.5:
		return CardinalityHigh
	default:
		return CardinalityLow
	}
}
