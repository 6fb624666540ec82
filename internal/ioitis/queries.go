package ioitis

const (
	acceptedSpeciesQ = `
SELECT tsn, rank_id, complete_name, kingdom_id
  FROM taxonomic_units
  WHERE unit_name1 = ? AND unit_name2 = ?
    AND name_usage = 'accepted' AND kingdom_id = ? AND rank_id = ?
  ORDER BY tsn
  LIMIT 1`

	acceptedInfraQ = `
SELECT tsn, rank_id, complete_name, kingdom_id
  FROM taxonomic_units
  WHERE unit_name1 = ? AND unit_name2 = ? AND unit_name3 = ?
    AND name_usage = 'accepted' AND kingdom_id = ? AND rank_id = ?
  ORDER BY tsn
  LIMIT 1`

	synonymSpeciesQ = `
SELECT s.tsn_accepted
  FROM taxonomic_units t
    JOIN synonym_links s ON t.tsn = s.tsn
  WHERE t.unit_name1 = ? AND t.unit_name2 = ?
    AND t.name_usage = 'not accepted' AND t.kingdom_id = ? AND t.rank_id = ?
  ORDER BY t.tsn
  LIMIT 1`

	synonymInfraQ = `
SELECT s.tsn_accepted
  FROM taxonomic_units t
    JOIN synonym_links s ON t.tsn = s.tsn
  WHERE t.unit_name1 = ? AND t.unit_name2 = ? AND t.unit_name3 = ?
    AND t.name_usage = 'not accepted' AND t.kingdom_id = ? AND t.rank_id = ?
  ORDER BY t.tsn
  LIMIT 1`

	acceptedByTSNQ = `
SELECT tsn, rank_id, complete_name, kingdom_id
  FROM taxonomic_units
  WHERE tsn = ? AND name_usage = 'accepted' AND kingdom_id = ?`

	genusSynonymQ = `
SELECT s.tsn_accepted
  FROM taxonomic_units t
    JOIN synonym_links s ON t.tsn = s.tsn
  WHERE t.unit_name1 = ?
    AND t.name_usage = 'not accepted' AND t.kingdom_id = ? AND t.rank_id = ?
  ORDER BY t.tsn
  LIMIT 1`

	genusByTSNQ = `
SELECT unit_name1
  FROM taxonomic_units
  WHERE tsn = ? AND name_usage = 'accepted' AND kingdom_id = ?`

	vernacularsQ = `
SELECT vernacular_name
  FROM vernaculars
  WHERE tsn = ?
  ORDER BY vernacular_name`

	candidatesQ = `
SELECT tsn, rank_id, complete_name, kingdom_id, name_usage
  FROM taxonomic_units
  WHERE kingdom_id = ? AND (%s)
  ORDER BY tsn`

	germinationCodeQ = `
SELECT germid
  FROM sc_germination_codes
  WHERE code = ?`
)
