package repository

import (
	"parlamento/internal/domain/entities"
)

type parliamentEntryItem struct {
	ID           string  `dynamodbav:"id"`
	Date         string  `dynamodbav:"date"`
	Law          string  `dynamodbav:"law"`
	LawURL       *string `dynamodbav:"lawUrl,omitempty"`
	Region       string  `dynamodbav:"region"`
	Construction string  `dynamodbav:"construction"`
	Cash         float64 `dynamodbav:"cash"`
	Gold         float64 `dynamodbav:"gold"`
	BBL          float64 `dynamodbav:"bbl"`
	KG           float64 `dynamodbav:"kg"`
}

type autonomousRegionItem struct {
	ID         string `dynamodbav:"id"`
	Name       string `dynamodbav:"name"`
	Title      string `dynamodbav:"title"`
	CoatOfArms string `dynamodbav:"coatOfArms"`
}

type dataSourceItem struct {
	ID          string  `dynamodbav:"id"`
	URL         string  `dynamodbav:"url"`
	Description string  `dynamodbav:"description"`
	Active      int     `dynamodbav:"active"`
	LastFetched *string `dynamodbav:"lastFetched,omitempty"`
}

func toParliamentEntryItem(e entities.ParliamentEntry) parliamentEntryItem {
	return parliamentEntryItem(toParliamentEntryModel(e))
}

func fromParliamentEntryItem(it parliamentEntryItem) entities.ParliamentEntry {
	return fromParliamentEntryModel(parliamentEntryModel(it))
}

func parliamentEntryUpdate(p entities.ParliamentEntryPatch) updateSet {
	var u updateSet
	if p.Date != nil {
		u.setS("date", formatTime(*p.Date))
	}
	if p.Law != nil {
		u.setS("law", *p.Law)
	}
	if p.ClearLawURL {
		u.remove("lawUrl")
	} else if p.LawURL != nil {
		u.setS("lawUrl", *p.LawURL)
	}
	if p.Region != nil {
		u.setS("region", *p.Region)
	}
	if p.Construction != nil {
		u.setS("construction", *p.Construction)
	}
	if p.Resources != nil {
		u.setN("cash", p.Resources.Cash)
		u.setN("gold", p.Resources.Gold)
		u.setN("bbl", p.Resources.BBL)
		u.setN("kg", p.Resources.KG)
	}
	return u
}

func toAutonomousRegionItem(r entities.AutonomousRegion) autonomousRegionItem {
	return autonomousRegionItem(toAutonomousRegionModel(r))
}

func fromAutonomousRegionItem(it autonomousRegionItem) entities.AutonomousRegion {
	return fromAutonomousRegionModel(autonomousRegionModel(it))
}

func autonomousRegionUpdate(p entities.AutonomousRegionPatch) updateSet {
	var u updateSet
	if p.Name != nil {
		u.setS("name", *p.Name)
	}
	if p.Title != nil {
		u.setS("title", *p.Title)
	}
	if p.CoatOfArms != nil {
		u.setS("coatOfArms", *p.CoatOfArms)
	}
	return u
}

func toDataSourceItem(d entities.DataSource) dataSourceItem {
	return dataSourceItem(toDataSourceModel(d))
}

func fromDataSourceItem(it dataSourceItem) entities.DataSource {
	return fromDataSourceModel(dataSourceModel(it))
}

func dataSourceUpdate(p entities.DataSourcePatch) updateSet {
	var u updateSet
	if p.URL != nil {
		u.setS("url", *p.URL)
	}
	if p.Description != nil {
		u.setS("description", *p.Description)
	}
	if p.Active != nil {
		u.setN("active", float64(entities.BoolToInt(*p.Active)))
	}
	if p.ClearLastFetched {
		u.remove("lastFetched")
	} else if p.LastFetched != nil {
		u.setS("lastFetched", formatTime(*p.LastFetched))
	}
	return u
}
