package exercise

// Category описывает категорию упражнения. Набор закрытый:
// новые значения добавляются только миграцией справочника.
type Category string

const (
	CategoryCardio      Category = "cardio"
	CategoryStrength    Category = "strength"
	CategoryFlexibility Category = "flexibility"
	CategoryBalance     Category = "balance"
)

// IsValid проверяет, что значение входит в закрытый набор категорий.
func (c Category) IsValid() bool {
	switch c {
	case CategoryCardio, CategoryStrength, CategoryFlexibility, CategoryBalance:
		return true
	}
	return false
}

// MuscleGroup описывает целевую группу мышц упражнения.
// Для упражнений без выраженной группы (например, кардио) значение отсутствует.
type MuscleGroup string

const (
	MuscleGroupChest     MuscleGroup = "chest"
	MuscleGroupBack      MuscleGroup = "back"
	MuscleGroupLegs      MuscleGroup = "legs"
	MuscleGroupShoulders MuscleGroup = "shoulders"
	MuscleGroupArms      MuscleGroup = "arms"
	MuscleGroupCore      MuscleGroup = "core"
	MuscleGroupFullBody  MuscleGroup = "full_body"
)

// Exercise представляет справочное определение упражнения.
//
// Это неизменяемые справочные данные: ядро тренировок только читает их
// по идентификатору, наполнение справочника выполняется миграциями.
type Exercise struct {
	ID          int64        // Уникальный идентификатор упражнения
	Name        string       // Название
	Description string       // Описание техники выполнения
	Category    Category     // Категория (закрытый набор)
	MuscleGroup *MuscleGroup // Группа мышц (опционально)
}
