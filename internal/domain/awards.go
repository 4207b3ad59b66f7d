package domain

// DefaultAwardTable returns the NFL MVP winners from 1960 onwards. This is
// the fixed question pool used when no backing store is configured.
func DefaultAwardTable() AwardTable {
	return AwardTable{
		1960: "Abner Haynes",
		1961: "George Blanda",
		1962: "Jim Taylor",
		1963: "Y.A. Tittle",
		1964: "Johnny Unitas",
		1965: "Jim Brown",
		1966: "Bart Starr",
		1967: "Johnny Unitas",
		1968: "Earl Morrall",
		1969: "Roman Gabriel",
		1970: "John Brodie",
		1971: "Alan Page",
		1972: "Larry Brown",
		1973: "O.J. Simpson",
		1974: "Ken Stabler",
		1975: "Fran Tarkenton",
		1976: "Bert Jones",
		1977: "Walter Payton",
		1978: "Terry Bradshaw",
		1979: "Earl Campbell",
		1980: "Brian Sipe",
		1981: "Ken Anderson",
		1982: "Mark Moseley",
		1983: "Joe Theismann",
		1984: "Dan Marino",
		1985: "Marcus Allen",
		1986: "Lawrence Taylor",
		1987: "John Elway",
		1988: "Boomer Esiason",
		1989: "Joe Montana",
		1990: "Joe Montana",
		1991: "Thurman Thomas",
		1992: "Steve Young",
		1993: "Emmitt Smith",
		1994: "Steve Young",
		1995: "Brett Favre",
		1996: "Brett Favre",
		1997: "Barry Sanders",
		1998: "Terrell Davis",
		1999: "Kurt Warner",
		2000: "Marshall Faulk",
		2001: "Kurt Warner",
		2002: "Rich Gannon",
		2003: "Peyton Manning",
		2004: "Peyton Manning",
		2005: "Shaun Alexander",
		2006: "LaDainian Tomlinson",
		2007: "Tom Brady",
		2008: "Peyton Manning",
		2009: "Peyton Manning",
		2010: "Tom Brady",
		2011: "Aaron Rodgers",
		2012: "Adrian Peterson",
		2013: "Peyton Manning",
		2014: "Aaron Rodgers",
		2015: "Cam Newton",
		2016: "Matt Ryan",
		2017: "Tom Brady",
		2018: "Patrick Mahomes",
		2019: "Lamar Jackson",
		2020: "Aaron Rodgers",
		2021: "Aaron Rodgers",
		2022: "Patrick Mahomes",
		2023: "Lamar Jackson",
		2024: "Josh Allen",
	}
}
