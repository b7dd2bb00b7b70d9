package testdata

const data = `[
  {
    "name": "swipe in rhythm",
    "combo": "DFG",
    "steps": [{"key": "D", "at": 0}, {"key": "F", "at": 120}, {"key": "G", "at": 240}],
    "results": ["started", "advanced", "completed"]
  },
  {
    "name": "bounce then skip",
    "combo": "DFG",
    "steps": [{"key": "D", "at": 0}, {"key": "F", "at": 20}, {"key": "G", "at": 140}],
    "results": ["started", "debounced", "reset"]
  },
  {
    "name": "too slow",
    "combo": "DFG",
    "steps": [{"key": "D", "at": 0}, {"key": "F", "at": 300}, {"key": "G", "at": 400}],
    "results": ["started", "reset", "reset"]
  },
  {
    "name": "reversed",
    "combo": "DFG",
    "steps": [{"key": "D", "at": 0}, {"key": "S", "at": 100}],
    "results": ["started", "reset"]
  },
  {
    "name": "skipped key",
    "combo": "DFG",
    "steps": [{"key": "D", "at": 0}, {"key": "G", "at": 100}],
    "results": ["started", "reset"]
  },
  {
    "name": "recover after reversal",
    "combo": "DFG",
    "steps": [
      {"key": "D", "at": 0}, {"key": "F", "at": 100}, {"key": "D", "at": 200},
      {"key": "F", "at": 320}, {"key": "G", "at": 440}
    ],
    "results": ["started", "advanced", "reset", "advanced", "completed"]
  },
  {
    "name": "auto repeat while holding",
    "combo": "DFG",
    "steps": [
      {"key": "D", "at": 0}, {"key": "D", "at": 30}, {"key": "D", "at": 60},
      {"key": "D", "at": 90}, {"key": "F", "at": 150}, {"key": "G", "at": 260}
    ],
    "results": ["started", "repeat", "repeat", "repeat", "advanced", "completed"]
  },
  {
    "name": "shortest gaps",
    "combo": "DFG",
    "steps": [{"key": "D", "at": 0}, {"key": "F", "at": 50}, {"key": "G", "at": 100}],
    "results": ["started", "advanced", "completed"]
  },
  {
    "name": "gap at the upper bound",
    "combo": "DFG",
    "steps": [{"key": "D", "at": 0}, {"key": "F", "at": 250}],
    "results": ["started", "reset"]
  },
  {
    "name": "longest gaps",
    "combo": "DFG",
    "steps": [{"key": "D", "at": 0}, {"key": "F", "at": 249}, {"key": "G", "at": 498}],
    "results": ["started", "advanced", "completed"]
  },
  {
    "name": "key off the row",
    "combo": "DFG",
    "steps": [{"key": "D", "at": 0}, {"key": "Q", "at": 60}, {"key": "F", "at": 120}, {"key": "G", "at": 240}],
    "results": ["started", "ignored", "advanced", "completed"]
  },
  {
    "name": "wrong first key",
    "combo": "DFG",
    "steps": [{"key": "S", "at": 0}, {"key": "D", "at": 100}, {"key": "F", "at": 200}, {"key": "G", "at": 300}],
    "results": ["reset", "started", "advanced", "completed"]
  },
  {
    "name": "key up does not break a swipe",
    "combo": "SDF",
    "steps": [
      {"key": "S", "at": 0}, {"key": "S", "at": 60, "up": true},
      {"key": "D", "at": 100}, {"key": "F", "at": 200}
    ],
    "results": ["started", "-", "advanced", "completed"]
  },
  {
    "name": "lower case",
    "combo": "HJK",
    "steps": [{"key": "h", "at": 0}, {"key": "j", "at": 100}, {"key": "k", "at": 200}],
    "results": ["started", "advanced", "completed"]
  },
  {
    "name": "single tap",
    "combo": "A",
    "steps": [{"key": "A", "at": 0}],
    "results": ["completed"]
  },
  {
    "name": "single after a wrong key",
    "combo": "A",
    "steps": [{"key": "S", "at": 0}, {"key": "A", "at": 5}],
    "results": ["held", "completed"]
  },
  {
    "name": "single released and pressed again",
    "combo": "K",
    "steps": [{"key": "J", "at": 0}, {"key": "J", "at": 40, "up": true}, {"key": "K", "at": 80}],
    "results": ["held", "-", "completed"]
  }
]`
