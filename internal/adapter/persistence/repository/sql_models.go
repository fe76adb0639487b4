package repository

import (
	"parlamento/internal/domain/entities"

	"gorm.io/gorm"
)

// Table and column names match the legacy database.sqlite layout, so an
// existing database can be opened as-is.

type parliamentEntryModel struct {
	ID           string  `gorm:"column:id;primaryKey"`
	Date         string  `gorm:"column:date;not null"`
	Law          string  `gorm:"column:law;not null"`
	LawURL       *string `gorm:"column:lawUrl"`
	Region       string  `gorm:"column:region;not null"`
	Construction string  `gorm:"column:construction;not null"`
	Cash         float64 `gorm:"column:cash;not null"`
	Gold         float64 `gorm:"column:gold;not null"`
	BBL          float64 `gorm:"column:bbl;not null"`
	KG           float64 `gorm:"column:kg;not null"`
}

func (parliamentEntryModel) TableName() string { return "ParliamentEntry" }

type autonomousRegionModel struct {
	ID         string `gorm:"column:id;primaryKey"`
	Name       string `gorm:"column:name;not null"`
	Title      string `gorm:"column:title;not null"`
	CoatOfArms string `gorm:"column:coatOfArms;not null"`
}

func (autonomousRegionModel) TableName() string { return "AutonomousRegion" }

type dataSourceModel struct {
	ID          string  `gorm:"column:id;primaryKey"`
	URL         string  `gorm:"column:url;not null"`
	Description string  `gorm:"column:description;not null"`
	Active      int     `gorm:"column:active;not null"`
	LastFetched *string `gorm:"column:lastFetched"`
}

func (dataSourceModel) TableName() string { return "DataSource" }

// SQLModels lists the gorm models for schema creation.
func SQLModels() []interface{} {
	return []interface{}{
		&parliamentEntryModel{},
		&autonomousRegionModel{},
		&dataSourceModel{},
	}
}

func toParliamentEntryModel(e entities.ParliamentEntry) parliamentEntryModel {
	return parliamentEntryModel{
		ID:           e.ID,
		Date:         formatTime(e.Date),
		Law:          e.Law,
		LawURL:       e.LawURL,
		Region:       e.Region,
		Construction: e.Construction,
		Cash:         e.Resources.Cash,
		Gold:         e.Resources.Gold,
		BBL:          e.Resources.BBL,
		KG:           e.Resources.KG,
	}
}

func fromParliamentEntryModel(m parliamentEntryModel) entities.ParliamentEntry {
	return entities.ParliamentEntry{
		ID:           m.ID,
		Date:         parseTime(m.Date),
		Law:          m.Law,
		LawURL:       m.LawURL,
		Region:       m.Region,
		Construction: m.Construction,
		Resources: entities.Resources{
			Cash: m.Cash,
			Gold: m.Gold,
			BBL:  m.BBL,
			KG:   m.KG,
		},
	}
}

func parliamentEntryColumns(p entities.ParliamentEntryPatch) map[string]interface{} {
	cols := map[string]interface{}{}
	if p.Date != nil {
		cols["date"] = formatTime(*p.Date)
	}
	if p.Law != nil {
		cols["law"] = *p.Law
	}
	if p.ClearLawURL {
		cols["lawUrl"] = nil
	} else if p.LawURL != nil {
		cols["lawUrl"] = *p.LawURL
	}
	if p.Region != nil {
		cols["region"] = *p.Region
	}
	if p.Construction != nil {
		cols["construction"] = *p.Construction
	}
	if p.Resources != nil {
		cols["cash"] = p.Resources.Cash
		cols["gold"] = p.Resources.Gold
		cols["bbl"] = p.Resources.BBL
		cols["kg"] = p.Resources.KG
	}
	return cols
}

func toAutonomousRegionModel(r entities.AutonomousRegion) autonomousRegionModel {
	return autonomousRegionModel{ID: r.ID, Name: r.Name, Title: r.Title, CoatOfArms: r.CoatOfArms}
}

func fromAutonomousRegionModel(m autonomousRegionModel) entities.AutonomousRegion {
	return entities.AutonomousRegion{ID: m.ID, Name: m.Name, Title: m.Title, CoatOfArms: m.CoatOfArms}
}

func autonomousRegionColumns(p entities.AutonomousRegionPatch) map[string]interface{} {
	cols := map[string]interface{}{}
	if p.Name != nil {
		cols["name"] = *p.Name
	}
	if p.Title != nil {
		cols["title"] = *p.Title
	}
	if p.CoatOfArms != nil {
		cols["coatOfArms"] = *p.CoatOfArms
	}
	return cols
}

func toDataSourceModel(d entities.DataSource) dataSourceModel {
	return dataSourceModel{
		ID:          d.ID,
		URL:         d.URL,
		Description: d.Description,
		Active:      entities.BoolToInt(d.Active),
		LastFetched: formatTimePtr(d.LastFetched),
	}
}

func fromDataSourceModel(m dataSourceModel) entities.DataSource {
	return entities.DataSource{
		ID:          m.ID,
		URL:         m.URL,
		Description: m.Description,
		Active:      entities.IntToBool(m.Active),
		LastFetched: parseTimePtr(m.LastFetched),
	}
}

func dataSourceColumns(p entities.DataSourcePatch) map[string]interface{} {
	cols := map[string]interface{}{}
	if p.URL != nil {
		cols["url"] = *p.URL
	}
	if p.Description != nil {
		cols["description"] = *p.Description
	}
	if p.Active != nil {
		cols["active"] = entities.BoolToInt(*p.Active)
	}
	if p.ClearLastFetched {
		cols["lastFetched"] = nil
	} else if p.LastFetched != nil {
		cols["lastFetched"] = formatTime(*p.LastFetched)
	}
	return cols
}

// AutoMigrateSQL creates the tables when absent. It never drops or rewrites
// existing columns, so it is safe to run on every start.
func AutoMigrateSQL(db *gorm.DB) error {
	return db.AutoMigrate(SQLModels()...)
}
